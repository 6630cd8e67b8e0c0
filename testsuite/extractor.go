package testsuite

import (
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-steplib/steps-trx-to-playlist/trx"
)

// OutcomeMap maps a test ID to its outcome. A repeated test ID keeps the last outcome.
type OutcomeMap map[string]string

// Record is a test definition joined with its outcome.
type Record struct {
	TestID     string
	Project    string
	Namespace  string
	Class      string
	MethodName string
	Outcome    string
}

// Failed ...
func (r Record) Failed() bool {
	return r.Outcome == OutcomeFailed
}

// Extractor ...
type Extractor interface {
	Extract(run trx.TestRun) (Suite, error)
}

type extractor struct {
	logger log.Logger
}

// NewExtractor ...
func NewExtractor(logger log.Logger) Extractor {
	return &extractor{
		logger: logger,
	}
}

// Extract builds the hierarchy of the failed tests of run.
func (e extractor) Extract(run trx.TestRun) (Suite, error) {
	e.logger.Printf("Collecting results...")
	outcomes := e.collectOutcomes(run.Results)

	e.logger.Printf("Collecting definitions...")
	records, err := collectRecords(run.TestDefinitions, outcomes)
	if err != nil {
		return Suite{}, err
	}

	suite := Suite{Projects: groupProjects(records)}
	for _, method := range suite.Methods() {
		e.logger.Debugf("Test %s %s", OutcomeFailed, method.FullName)
	}

	return suite, nil
}

func (e extractor) collectOutcomes(results []trx.UnitTestResult) OutcomeMap {
	outcomes := OutcomeMap{}
	for _, result := range results {
		e.logger.Debugf("%s : %s", result.TestName, result.Outcome)
		outcomes[result.TestID] = result.Outcome
	}
	return outcomes
}

func collectRecords(definitions []trx.UnitTest, outcomes OutcomeMap) ([]Record, error) {
	records := make([]Record, 0, len(definitions))
	for _, definition := range definitions {
		if definition.TestMethod == nil {
			return nil, &FormatError{TestID: definition.ID, Reason: "missing TestMethod element"}
		}

		name, err := ParseClassName(definition.TestMethod.ClassName)
		if err != nil {
			if formatErr, ok := err.(*FormatError); ok {
				formatErr.TestID = definition.ID
			}
			return nil, err
		}

		records = append(records, Record{
			TestID:     definition.ID,
			Project:    name.Project,
			Namespace:  name.Namespace,
			Class:      name.Class,
			MethodName: definition.Name,
			Outcome:    outcomes[definition.ID],
		})
	}
	return records, nil
}

// groupProjects groups every record, passed ones included, so group order follows the
// definition list; non-failed records are filtered at the method level and empty groups
// are pruned on the way up.
func groupProjects(records []Record) []Project {
	return nest(records, func(r Record) string { return r.Project }, func(name string, records []Record) (Project, bool) {
		namespaces := groupNamespaces(records)
		return Project{Name: name, Namespaces: namespaces}, len(namespaces) > 0
	})
}

func groupNamespaces(records []Record) []Namespace {
	return nest(records, func(r Record) string { return r.Namespace }, func(name string, records []Record) (Namespace, bool) {
		classes := groupClasses(records)
		return Namespace{Name: name, Classes: classes}, len(classes) > 0
	})
}

func groupClasses(records []Record) []Class {
	return nest(records, func(r Record) string { return r.Class }, func(name string, records []Record) (Class, bool) {
		methods := failedMethods(records)
		return Class{Name: name, Methods: methods}, len(methods) > 0
	})
}

func failedMethods(records []Record) []Method {
	var methods []Method
	for _, record := range records {
		if !record.Failed() {
			continue
		}

		methods = append(methods, Method{
			Name:     record.MethodName,
			FullName: record.Namespace + "." + record.Class + "." + record.MethodName,
		})
	}
	return methods
}
