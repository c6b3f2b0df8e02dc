package dispatcher

import (
	"fmt"
	"strings"

	"MarketAsk/internal/classifier"
)

// Manual renders the feature manual: icon, description, trigger keywords and
// example queries for every feature.
func (d *Dispatcher) Manual() string {
	var b strings.Builder
	b.WriteString("**User Manual:**\n\n")
	for _, f := range d.ref.Features() {
		fmt.Fprintf(&b, "### %s %s\n", f.Icon, f.Name)
		fmt.Fprintf(&b, "%s\n\n", f.Description)
		fmt.Fprintf(&b, "**Keywords:** %s\n\n", strings.Join(classifier.Keywords(f.Intent), ", "))
		b.WriteString("**Examples:**\n")
		for _, ex := range f.Examples {
			fmt.Fprintf(&b, "- %s\n", ex)
		}
		b.WriteString("\n---\n\n")
	}
	return b.String()
}

// Examples lists every example query, grouped under the feature names.
func (d *Dispatcher) Examples() string {
	var b strings.Builder
	b.WriteString("**Example queries:**\n\n")
	for _, f := range d.ref.Features() {
		fmt.Fprintf(&b, "%s **%s**\n", f.Icon, f.Name)
		for _, ex := range f.Examples {
			fmt.Fprintf(&b, "- %s\n", ex)
		}
		b.WriteString("\n")
	}
	return b.String()
}
