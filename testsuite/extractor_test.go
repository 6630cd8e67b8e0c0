package testsuite

import (
	"errors"
	"testing"

	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-steplib/steps-trx-to-playlist/trx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_GivenOneFailedTest_WhenExtracting_ThenBuildsTheWholeChain(t *testing.T) {
	// Given
	run := trx.TestRun{
		Results: []trx.UnitTestResult{
			{TestID: "t1", TestName: "ShouldSum", Outcome: "Failed"},
		},
		TestDefinitions: []trx.UnitTest{
			definition("t1", "ShouldSum", "Acme.Test.Billing.InvoiceTests"),
		},
	}

	// When
	suite, err := NewExtractor(log.NewLogger()).Extract(run)

	// Then
	require.NoError(t, err)
	require.Equal(t, Suite{Projects: []Project{
		{
			Name: "Acme.Test",
			Namespaces: []Namespace{
				{
					Name: "Acme.Test.Billing",
					Classes: []Class{
						{
							Name: "InvoiceTests",
							Methods: []Method{
								{Name: "ShouldSum", FullName: "Acme.Test.Billing.InvoiceTests.ShouldSum"},
							},
						},
					},
				},
			},
		},
	}}, suite)
}

func Test_GivenNoFailedTests_WhenExtracting_ThenSuiteIsEmpty(t *testing.T) {
	// Given
	run := trx.TestRun{
		Results: []trx.UnitTestResult{
			{TestID: "t1", Outcome: "Passed"},
			{TestID: "t2", Outcome: "NotExecuted"},
		},
		TestDefinitions: []trx.UnitTest{
			definition("t1", "ShouldSum", "Acme.Test.Billing.InvoiceTests"),
			definition("t2", "ShouldRound", "Acme.Test.Billing.InvoiceTests"),
		},
	}

	// When
	suite, err := NewExtractor(log.NewLogger()).Extract(run)

	// Then
	require.NoError(t, err)
	assert.Empty(t, suite.Projects)
	assert.Equal(t, 0, suite.MethodCount())
}

func Test_GivenMixedOutcomes_WhenExtracting_ThenPrunesGroupsWithoutFailures(t *testing.T) {
	// Given
	run := trx.TestRun{
		Results: []trx.UnitTestResult{
			{TestID: "t1", Outcome: "Passed"},
			{TestID: "t2", Outcome: "Failed"},
			{TestID: "t3", Outcome: "Passed"},
			{TestID: "t4", Outcome: "Failed"},
			{TestID: "t5", Outcome: "failed"},
		},
		TestDefinitions: []trx.UnitTest{
			definition("t1", "ShouldPay", "Acme.Test.Payments.CardTests"),
			definition("t2", "ShouldSum", "Acme.Test.Billing.InvoiceTests"),
			definition("t3", "ShouldRound", "Acme.Test.Billing.RoundingTests"),
			definition("t4", "ShouldRead", "Acme.Io.Test.Readers.FileReaderTests"),
			definition("t5", "ShouldWrite", "Acme.Io.Test.Writers.FileWriterTests"),
			definition("t6", "ShouldSkip", "Acme.Io.Test.Writers.FileWriterTests"),
		},
	}

	// When
	suite, err := NewExtractor(log.NewLogger()).Extract(run)

	// Then
	require.NoError(t, err)
	require.Len(t, suite.Projects, 2)

	billing := suite.Projects[0]
	require.Equal(t, "Acme.Test", billing.Name)
	require.Len(t, billing.Namespaces, 1)
	require.Equal(t, "Acme.Test.Billing", billing.Namespaces[0].Name)
	require.Len(t, billing.Namespaces[0].Classes, 1)
	require.Equal(t, "InvoiceTests", billing.Namespaces[0].Classes[0].Name)

	io := suite.Projects[1]
	require.Equal(t, "Acme.Io.Test", io.Name)
	require.Len(t, io.Namespaces, 1)
	require.Equal(t, "Acme.Io.Test.Readers", io.Namespaces[0].Name)

	require.Equal(t, []string{
		"Acme.Test.Billing.InvoiceTests.ShouldSum",
		"Acme.Io.Test.Readers.FileReaderTests.ShouldRead",
	}, suite.FullNames())
}

func Test_GivenDefinitionOrder_WhenExtracting_ThenGroupsFollowFirstOccurrence(t *testing.T) {
	// Given
	run := trx.TestRun{
		Results: []trx.UnitTestResult{
			{TestID: "t1", Outcome: "Passed"},
			{TestID: "t2", Outcome: "Failed"},
			{TestID: "t3", Outcome: "Failed"},
			{TestID: "t4", Outcome: "Failed"},
		},
		TestDefinitions: []trx.UnitTest{
			definition("t1", "ShouldZip", "Zeta.Test.Archive.ZipTests"),
			definition("t2", "ShouldSum", "Acme.Test.Billing.InvoiceTests"),
			definition("t3", "ShouldUnzip", "Zeta.Test.Archive.ZipTests"),
			definition("t4", "ShouldAdd", "Acme.Test.Billing.InvoiceTests"),
		},
	}

	// When
	suite, err := NewExtractor(log.NewLogger()).Extract(run)

	// Then
	require.NoError(t, err)
	require.Equal(t, []string{
		"Zeta.Test.Archive.ZipTests.ShouldUnzip",
		"Acme.Test.Billing.InvoiceTests.ShouldSum",
		"Acme.Test.Billing.InvoiceTests.ShouldAdd",
	}, suite.FullNames())
}

func Test_GivenDuplicatedResult_WhenExtracting_ThenLastOutcomeWins(t *testing.T) {
	// Given
	run := trx.TestRun{
		Results: []trx.UnitTestResult{
			{TestID: "t1", Outcome: "Passed"},
			{TestID: "t1", Outcome: "Failed"},
			{TestID: "t2", Outcome: "Failed"},
			{TestID: "t2", Outcome: "Passed"},
		},
		TestDefinitions: []trx.UnitTest{
			definition("t1", "ShouldSum", "Acme.Test.Billing.InvoiceTests"),
			definition("t2", "ShouldAdd", "Acme.Test.Billing.InvoiceTests"),
		},
	}

	// When
	suite, err := NewExtractor(log.NewLogger()).Extract(run)

	// Then
	require.NoError(t, err)
	require.Equal(t, []string{"Acme.Test.Billing.InvoiceTests.ShouldSum"}, suite.FullNames())
}

func Test_GivenResultWithoutDefinition_WhenExtracting_ThenItIsIgnored(t *testing.T) {
	// Given
	run := trx.TestRun{
		Results: []trx.UnitTestResult{
			{TestID: "orphan", Outcome: "Failed"},
		},
		TestDefinitions: []trx.UnitTest{
			definition("t1", "ShouldSum", "Acme.Test.Billing.InvoiceTests"),
		},
	}

	// When
	suite, err := NewExtractor(log.NewLogger()).Extract(run)

	// Then
	require.NoError(t, err)
	require.Empty(t, suite.Projects)
}

func Test_GivenInvalidClassName_WhenExtracting_ThenFailsWithFormatError(t *testing.T) {
	// Given
	run := trx.TestRun{
		Results: []trx.UnitTestResult{
			{TestID: "t1", Outcome: "Failed"},
		},
		TestDefinitions: []trx.UnitTest{
			definition("t1", "ShouldSum", "Acme.Billing.InvoiceTests"),
		},
	}

	// When
	_, err := NewExtractor(log.NewLogger()).Extract(run)

	// Then
	var formatErr *FormatError
	require.True(t, errors.As(err, &formatErr))
	require.Equal(t, "t1", formatErr.TestID)
	require.Equal(t, "Acme.Billing.InvoiceTests", formatErr.ClassName)
}

func Test_GivenDefinitionWithoutTestMethod_WhenExtracting_ThenFailsWithFormatError(t *testing.T) {
	// Given
	run := trx.TestRun{
		TestDefinitions: []trx.UnitTest{{ID: "t1", Name: "ShouldSum"}},
	}

	// When
	_, err := NewExtractor(log.NewLogger()).Extract(run)

	// Then
	var formatErr *FormatError
	require.True(t, errors.As(err, &formatErr))
	require.Equal(t, "t1", formatErr.TestID)
}

// Helpers

func definition(id, name, className string) trx.UnitTest {
	return trx.UnitTest{
		ID:   id,
		Name: name,
		TestMethod: &trx.TestMethod{
			ClassName: className,
			Name:      name,
		},
	}
}
