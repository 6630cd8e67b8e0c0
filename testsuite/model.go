// Package testsuite turns the result and definition sections of a TRX run into the
// Project > Namespace > Class > Method hierarchy of the failed tests.
package testsuite

// OutcomeFailed is the only outcome kept in the hierarchy.
const OutcomeFailed = "Failed"

// Suite is the hierarchy of the failed tests. Every node in it has at least one Method.
type Suite struct {
	Projects []Project
}

// Project ...
type Project struct {
	Name       string
	Namespaces []Namespace
}

// Namespace ...
type Namespace struct {
	Name    string
	Classes []Class
}

// Class ...
type Class struct {
	Name    string
	Methods []Method
}

// Method is a failed test method. FullName is <namespace>.<class>.<method>.
type Method struct {
	Name     string
	FullName string
}

// Methods returns the methods of the suite in hierarchy order.
func (s Suite) Methods() []Method {
	var methods []Method
	for _, project := range s.Projects {
		for _, namespace := range project.Namespaces {
			for _, class := range namespace.Classes {
				methods = append(methods, class.Methods...)
			}
		}
	}
	return methods
}

// FullNames ...
func (s Suite) FullNames() []string {
	var names []string
	for _, method := range s.Methods() {
		names = append(names, method.FullName)
	}
	return names
}

// MethodCount ...
func (s Suite) MethodCount() int {
	return len(s.Methods())
}
