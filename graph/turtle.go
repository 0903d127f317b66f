package graph

import (
	"fmt"
	"sort"
	"strings"

	"github.com/knakk/rdf"

	"github.com/Kurrawong/ontoshacl/vocabulary/rdfns"
	"github.com/Kurrawong/ontoshacl/vocabulary/xsd"
)

// QName returns the prefixed form of t under the store's bindings. IRIs with
// no usable binding, and all non-IRI terms, fall back to their N-Triples
// form.
func (g *Store) QName(t rdf.Term) string {
	iri, ok := t.(rdf.IRI)
	if !ok {
		return t.Serialize(rdf.NTriples)
	}
	s := iri.String()
	bestPrefix, bestNS := "", ""
	for prefix, ns := range g.prefixes {
		if ns == "" || !strings.HasPrefix(s, ns) || len(ns) <= len(bestNS) {
			continue
		}
		if !validLocalName(s[len(ns):]) {
			continue
		}
		bestPrefix, bestNS = prefix, ns
	}
	if bestNS == "" {
		return "<" + s + ">"
	}
	return bestPrefix + ":" + s[len(bestNS):]
}

func validLocalName(s string) bool {
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '_' || r == '-':
		default:
			return false
		}
	}
	return true
}

// Serialize renders the store as Turtle.
//
// The output is deterministic: prefixes, subjects, predicates and objects
// are sorted, and blank nodes referenced exactly once are inlined as
// bracketed expressions or collections, so labels from generated blank
// nodes never leak into the output of a well-formed shapes graph.
func (g *Store) Serialize() string {
	w := &turtleWriter{
		store:  g,
		groups: make(map[string]*subjectGroup),
		labels: make(map[string]string),
	}
	return w.render()
}

type predicateGroup struct {
	pred rdf.Predicate
	objs []rdf.Object
}

type subjectGroup struct {
	subj   rdf.Subject
	preds  []*predicateGroup
	byPred map[string]*predicateGroup
}

type turtleWriter struct {
	store   *Store
	groups  map[string]*subjectGroup
	refs    map[string]int
	labels  map[string]string
	visited map[string]bool
}

func (w *turtleWriter) render() string {
	var sb strings.Builder
	w.writePrefixes(&sb)
	w.group()
	w.countBlankRefs()
	w.visited = make(map[string]bool)

	keys := make([]string, 0, len(w.groups))
	for key := range w.groups {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		grp := w.groups[key]
		if b, ok := grp.subj.(rdf.Blank); ok && w.refs[termKey(b)] == 1 {
			continue // rendered inline at its single use site
		}
		w.writeSubject(&sb, grp)
	}
	return sb.String()
}

func (w *turtleWriter) writePrefixes(sb *strings.Builder) {
	prefixes := make([]string, 0, len(w.store.prefixes))
	for p := range w.store.prefixes {
		prefixes = append(prefixes, p)
	}
	sort.Strings(prefixes)
	for _, p := range prefixes {
		fmt.Fprintf(sb, "@prefix %s: <%s> .\n", p, w.store.prefixes[p])
	}
	if len(prefixes) > 0 {
		sb.WriteString("\n")
	}
}

func termKey(t rdf.Term) string {
	return t.Serialize(rdf.NTriples)
}

func (w *turtleWriter) group() {
	for _, t := range w.store.triples {
		key := subjectSortKey(t.Subj)
		grp, ok := w.groups[key]
		if !ok {
			grp = &subjectGroup{subj: t.Subj, byPred: make(map[string]*predicateGroup)}
			w.groups[key] = grp
		}
		pkey := termKey(t.Pred)
		pg, ok := grp.byPred[pkey]
		if !ok {
			pg = &predicateGroup{pred: t.Pred}
			grp.byPred[pkey] = pg
			grp.preds = append(grp.preds, pg)
		}
		pg.objs = append(pg.objs, t.Obj)
	}
}

// subjectSortKey orders IRI subjects before blank subjects.
func subjectSortKey(s rdf.Subject) string {
	if s.Type() == rdf.TermBlank {
		return "1" + termKey(s)
	}
	return "0" + termKey(s)
}

func (w *turtleWriter) countBlankRefs() {
	w.refs = make(map[string]int)
	for _, t := range w.store.triples {
		if b, ok := t.Obj.(rdf.Blank); ok {
			w.refs[termKey(b)]++
		}
	}
}

func (w *turtleWriter) writeSubject(sb *strings.Builder, grp *subjectGroup) {
	var subj string
	if b, ok := grp.subj.(rdf.Blank); ok {
		subj = w.label(b)
	} else {
		subj = w.store.QName(grp.subj)
	}
	sb.WriteString(subj)
	sb.WriteString("\n")
	w.writePredicates(sb, grp, "    ", " .")
	sb.WriteString("\n")
}

// writePredicates renders a subject's predicate/object lines, terminating
// the last line with terminator.
func (w *turtleWriter) writePredicates(sb *strings.Builder, grp *subjectGroup, indent, terminator string) {
	preds := sortedPredicates(grp, w.store)
	for i, pg := range preds {
		objs := w.renderObjects(pg.objs)
		name := w.store.QName(pg.pred)
		if pg.pred.Serialize(rdf.NTriples) == "<"+rdfns.Type+">" {
			name = "a"
		}
		sep := " ;"
		if i == len(preds)-1 {
			sep = terminator
		}
		fmt.Fprintf(sb, "%s%s %s%s\n", indent, name, strings.Join(objs, ", "), sep)
	}
}

func sortedPredicates(grp *subjectGroup, g *Store) []*predicateGroup {
	preds := make([]*predicateGroup, len(grp.preds))
	copy(preds, grp.preds)
	sort.Slice(preds, func(i, j int) bool {
		a, b := preds[i], preds[j]
		aType := a.pred.Serialize(rdf.NTriples) == "<"+rdfns.Type+">"
		bType := b.pred.Serialize(rdf.NTriples) == "<"+rdfns.Type+">"
		if aType != bType {
			return aType
		}
		return g.QName(a.pred) < g.QName(b.pred)
	})
	return preds
}

func (w *turtleWriter) renderObjects(objs []rdf.Object) []string {
	out := make([]string, 0, len(objs))
	for _, o := range objs {
		out = append(out, w.renderObject(o))
	}
	sort.Strings(out)
	return out
}

func (w *turtleWriter) renderObject(o rdf.Object) string {
	switch t := o.(type) {
	case rdf.Blank:
		key := termKey(t)
		if w.refs[key] == 1 && !w.visited[key] {
			w.visited[key] = true
			if w.store.isListHead(t) {
				return w.renderList(t)
			}
			return w.renderInlineBlank(t)
		}
		return w.label(t)
	case rdf.Literal:
		return w.renderLiteral(t)
	default:
		return w.store.QName(o)
	}
}

func (w *turtleWriter) renderList(head rdf.Subject) string {
	first := MustIRI(rdfns.First)
	rest := MustIRI(rdfns.Rest)
	nilIRI := MustIRI(rdfns.Nil)

	items := []string{}
	node := rdf.Term(head)
	for node != nil && !TermEqual(node, nilIRI) {
		subj, ok := node.(rdf.Subject)
		if !ok {
			break
		}
		member, ok := w.store.Value(subj, first)
		if !ok {
			break
		}
		items = append(items, w.renderObject(member))
		next, ok := w.store.Value(subj, rest)
		if !ok {
			break
		}
		node = next
	}
	sort.Strings(items)
	return "( " + strings.Join(items, " ") + " )"
}

func (w *turtleWriter) renderInlineBlank(b rdf.Blank) string {
	grp, ok := w.groups[subjectSortKey(b)]
	if !ok {
		return w.label(b)
	}
	var parts []string
	for _, pg := range sortedPredicates(grp, w.store) {
		name := w.store.QName(pg.pred)
		if pg.pred.Serialize(rdf.NTriples) == "<"+rdfns.Type+">" {
			name = "a"
		}
		parts = append(parts, name+" "+strings.Join(w.renderObjects(pg.objs), ", "))
	}
	return "[ " + strings.Join(parts, " ; ") + " ]"
}

// label assigns stable output labels to blank nodes that cannot be inlined.
func (w *turtleWriter) label(b rdf.Blank) string {
	key := termKey(b)
	if l, ok := w.labels[key]; ok {
		return l
	}
	l := fmt.Sprintf("_:b%d", len(w.labels))
	w.labels[key] = l
	return l
}

func (w *turtleWriter) renderLiteral(l rdf.Literal) string {
	val := l.String()
	dt := l.DataType.String()
	switch {
	case l.Lang() != "":
		return `"` + escapeString(val) + `"@` + l.Lang()
	case dt == xsd.Integer && isInteger(val):
		return val
	case dt == xsd.Boolean && (val == "true" || val == "false"):
		return val
	case dt == "" || dt == xsd.String:
		return `"` + escapeString(val) + `"`
	default:
		return `"` + escapeString(val) + `"^^` + w.store.QName(l.DataType)
	}
}

func isInteger(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 && (r == '-' || r == '+') && len(s) > 1 {
			continue
		}
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// escapeString escapes special characters for Turtle string literals.
func escapeString(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, "\r", "\\r")
	s = strings.ReplaceAll(s, "\t", "\\t")
	return s
}
