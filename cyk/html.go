package cyk

import (
	"fmt"
	"html"
	"io"
	"strings"
)

// TableAsHTML exports a recognition table in HTML-format. Row ℓ lists the cells
// for sub-sentences of length ℓ, the top row shows the input words.
func TableAsHTML(t *Table, w io.Writer) {
	if t == nil {
		tracer().Errorf("no recognition table, cannot export to HTML")
		return
	}
	io.WriteString(w, "<html><body>\n")
	io.WriteString(w, fmt.Sprintf("CYK table for %d words, accepted = %v<p>", t.n, t.accepted))
	io.WriteString(w, "<table border=1 cellspacing=0 cellpadding=5>\n")
	io.WriteString(w, "<tr bgcolor=#cccccc><td></td>\n")
	for _, word := range t.words {
		io.WriteString(w, fmt.Sprintf("<td>%s</td>", html.EscapeString(word)))
	}
	io.WriteString(w, "</tr>\n")
	var td string // table cell
	for l := 1; l <= t.n; l++ {
		io.WriteString(w, fmt.Sprintf("<tr><td>ℓ=%d</td>\n", l))
		for i := 0; i < t.n; i++ {
			syms := t.Symbols(i, l)
			if len(syms) == 0 {
				td = "&nbsp;"
			} else {
				names := make([]string, len(syms))
				for j, A := range syms {
					names[j] = html.EscapeString(A.Name)
				}
				td = strings.Join(names, " ")
			}
			if l == t.n && i == 0 && t.accepted {
				io.WriteString(w, "<td bgcolor=#ccffcc>")
			} else {
				io.WriteString(w, "<td>")
			}
			io.WriteString(w, td)
			io.WriteString(w, "</td>\n")
		}
		io.WriteString(w, "</tr>\n")
	}
	io.WriteString(w, "</table></body></html>\n")
}
