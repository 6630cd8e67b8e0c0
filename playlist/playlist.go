// Package playlist builds and writes test playlist documents. Version 2.0 playlists are
// trees of Rule elements: a Rule with Match="All" is a conjunction of its children and a
// Rule with Match="Any" is a disjunction.
package playlist

import "encoding/xml"

// Rule match modes.
const (
	MatchAll = "All"
	MatchAny = "Any"
)

// Property names of the playlist rule dialect.
const (
	PropertySolution    = "Solution"
	PropertyProject     = "Project"
	PropertyNamespace   = "Namespace"
	PropertyClass       = "Class"
	PropertyFullName    = "TestWithNormalizedFullyQualifiedName"
	PropertyDisplayName = "DisplayName"
)

const includesRuleName = "Includes"

// Playlist is the root element. Rules are used by Version 2.0, Tests by Version 1.0.
type Playlist struct {
	XMLName xml.Name `xml:"Playlist"`
	Version string   `xml:"Version,attr"`
	Rules   []Rule   `xml:"Rule"`
	Tests   []Add    `xml:"Add"`
}

// Rule ...
type Rule struct {
	Name       string     `xml:"Name,attr,omitempty"`
	Match      string     `xml:"Match,attr"`
	Properties []Property `xml:"Property"`
	Rules      []Rule     `xml:"Rule"`
}

// Property ...
type Property struct {
	Name  string  `xml:"Name,attr"`
	Value *string `xml:"Value,attr,omitempty"`
}

// Add is a Version 1.0 test entry.
type Add struct {
	Test string `xml:"Test,attr"`
}

// Marshal serializes the playlist with an XML declaration and two-space indentation.
func Marshal(p Playlist) ([]byte, error) {
	content, err := xml.MarshalIndent(p, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), content...), nil
}
