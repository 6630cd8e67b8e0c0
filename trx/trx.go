package trx

import "encoding/xml"

// Namespace is the XML namespace of the VisualStudio TeamTest 2010 result schema.
const Namespace = "http://microsoft.com/schemas/VisualStudio/TeamTest/2010"

// TestRun is the subset of a TRX document the step consumes:
// /TestRun/Results/UnitTestResult and /TestRun/TestDefinitions/UnitTest.
type TestRun struct {
	XMLName         xml.Name         `xml:"TestRun"`
	Name            string           `xml:"name,attr"`
	Results         []UnitTestResult `xml:"http://microsoft.com/schemas/VisualStudio/TeamTest/2010 Results>UnitTestResult"`
	TestDefinitions []UnitTest       `xml:"http://microsoft.com/schemas/VisualStudio/TeamTest/2010 TestDefinitions>UnitTest"`
}

// UnitTestResult ...
type UnitTestResult struct {
	ExecutionID string `xml:"executionId,attr"`
	TestID      string `xml:"testId,attr"`
	TestName    string `xml:"testName,attr"`
	Outcome     string `xml:"outcome,attr"`
}

// UnitTest is a test definition.
type UnitTest struct {
	ID         string      `xml:"id,attr"`
	Name       string      `xml:"name,attr"`
	Storage    string      `xml:"storage,attr"`
	TestMethod *TestMethod `xml:"http://microsoft.com/schemas/VisualStudio/TeamTest/2010 TestMethod"`
}

// TestMethod ...
type TestMethod struct {
	CodeBase        string `xml:"codeBase,attr"`
	AdapterTypeName string `xml:"adapterTypeName,attr"`
	ClassName       string `xml:"className,attr"`
	Name            string `xml:"name,attr"`
}

// Merge concatenates the results of the given runs in argument order, so a later run's
// outcome overrides an earlier one for the same test ID. Definitions are kept once per
// test ID, at their first occurrence, also within a single run.
func Merge(runs ...TestRun) TestRun {
	var merged TestRun
	defined := map[string]bool{}
	for _, run := range runs {
		if merged.Name == "" {
			merged.Name = run.Name
		}
		merged.Results = append(merged.Results, run.Results...)

		for _, definition := range run.TestDefinitions {
			if defined[definition.ID] {
				continue
			}
			defined[definition.ID] = true
			merged.TestDefinitions = append(merged.TestDefinitions, definition)
		}
	}
	return merged
}
