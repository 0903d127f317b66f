package shapes

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Kurrawong/ontoshacl/ontology"
)

// propertyMessage composes the human-readable explanation for a property
// shape: the constrained subject class (restriction rules only), the
// permitted object classes, and the cardinality phrasing. Shapes with no
// class constraint and no cardinality bound get no message.
func (s *Shacl) propertyMessage(b *propertyShape) string {
	if len(b.classes) == 0 && b.minCount == nil && b.maxCount == nil {
		return ""
	}
	path := s.qname(b.path)
	subject := ""
	if b.kind == ruleRestriction && b.owner != nil {
		subject = s.qname(b.owner.URI)
	}

	var sb strings.Builder
	min, max := b.minCount, b.maxCount
	switch {
	case min != nil && max != nil && *min == *max:
		fmt.Fprintf(&sb, "\n- A %s must be the target of exactly %d %s statements", subject, *min, path)
	case min != nil && max != nil:
		fmt.Fprintf(&sb, "\n- A %s must have between %d and %d %s statements", subject, *min, *max, path)
	case min != nil:
		fmt.Fprintf(&sb, "\n- A %s must have at least %d %s statements", subject, *min, path)
	case max != nil:
		// sh:maxCount is inclusive: the bound itself is the highest
		// permitted count.
		fmt.Fprintf(&sb, "\n- A %s must not have more than %d %s statements", subject, *max, path)
	}

	if len(b.classes) > 0 {
		names := make([]string, 0, len(b.classes))
		for _, c := range b.classes {
			names = append(names, s.qname(c))
		}
		sort.Strings(names)

		if subject != "" {
			fmt.Fprintf(&sb, "\n- The object of the %s property on a %s must be ", path, subject)
		} else {
			fmt.Fprintf(&sb, "\n- The object of the %s property must be ", path)
		}
		if len(names) > 1 {
			sb.WriteString("one of [" + strings.Join(names, ", ") + "]")
		} else {
			sb.WriteString("a " + names[0])
		}
	}
	return sb.String()
}

// nodeMessage is the validation message attached to a class's node shape.
func (s *Shacl) nodeMessage(k ontology.Klass) string {
	return fmt.Sprintf("A %s did not satisfy one or more of its property constraints", s.qname(k.URI))
}
