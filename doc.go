/*
Package chomsky is a toolbox for context-free grammars in Chomsky normal form.

It normalizes arbitrary context-free grammars into CNF and recognizes sentences
with the Cocke-Younger-Kasami algorithm, including the reconstruction of a
parse tree from the recognition table. Package structure is as follows:

■ grammar: Package grammar holds the grammar model, a grammar builder and
EBNF export. Sub-package bnf reads and writes grammar files.

■ cnf: Package cnf transforms a grammar into Chomsky normal form.

■ cyk: Package cyk implements the CYK recognizer and the tree builder.

■ parsetree: Package parsetree holds binary parse trees, their validation and
traversal.

■ scanner: Package scanner splits sentences into tokens.

■ suite: Package suite runs test cases (sentences with expected outcome) against
a grammar.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package chomsky
