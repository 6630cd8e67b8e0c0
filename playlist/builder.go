package playlist

import (
	"github.com/bitrise-steplib/steps-trx-to-playlist/testsuite"
	"github.com/hashicorp/go-version"
)

// Build converts the suite into a playlist document of the given format version.
func Build(suite testsuite.Suite, ver *version.Version) Playlist {
	if isLegacy(ver) {
		return buildLegacy(suite, ver)
	}

	var projectRules []Rule
	for _, project := range suite.Projects {
		projectRules = append(projectRules, projectRule(project))
	}

	return Playlist{
		Version: versionAttribute(ver),
		Rules: []Rule{
			{
				Name:  includesRuleName,
				Match: MatchAny,
				Rules: []Rule{
					matchAll(property(PropertySolution, nil), projectRules...),
				},
			},
		},
	}
}

func buildLegacy(suite testsuite.Suite, ver *version.Version) Playlist {
	var tests []Add
	for _, method := range suite.Methods() {
		tests = append(tests, Add{Test: method.FullName})
	}
	return Playlist{
		Version: versionAttribute(ver),
		Tests:   tests,
	}
}

func projectRule(project testsuite.Project) Rule {
	var rules []Rule
	for _, namespace := range project.Namespaces {
		rules = append(rules, namespaceRule(namespace))
	}
	return matchAll(property(PropertyProject, &project.Name), rules...)
}

func namespaceRule(namespace testsuite.Namespace) Rule {
	var rules []Rule
	for _, class := range namespace.Classes {
		rules = append(rules, classRule(class))
	}
	return matchAll(property(PropertyNamespace, &namespace.Name), rules...)
}

func classRule(class testsuite.Class) Rule {
	var rules []Rule
	for _, method := range class.Methods {
		rules = append(rules, methodRule(method))
	}
	return matchAll(property(PropertyClass, &class.Name), rules...)
}

func methodRule(method testsuite.Method) Rule {
	return Rule{
		Match:      MatchAll,
		Properties: []Property{property(PropertyFullName, &method.FullName)},
		Rules: []Rule{
			{
				Match:      MatchAny,
				Properties: []Property{property(PropertyDisplayName, &method.Name)},
			},
		},
	}
}

// matchAll pairs p with an Any rule over children: p AND (child1 OR child2 ...).
func matchAll(p Property, children ...Rule) Rule {
	return Rule{
		Match:      MatchAll,
		Properties: []Property{p},
		Rules: []Rule{
			{
				Match: MatchAny,
				Rules: children,
			},
		},
	}
}

func property(name string, value *string) Property {
	return Property{Name: name, Value: value}
}
