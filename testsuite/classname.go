package testsuite

import (
	"fmt"
	"regexp"
)

// <ModulePrefix>.Test.<SubNamespace>.<SimpleClassName>, both leading groups greedy.
var fullClassNamePattern = regexp.MustCompile(`(.*)\.Test\.(.*)\.(.*)`)

// QualifiedClassName is a fully-qualified test class name split by the test project convention.
type QualifiedClassName struct {
	Project   string
	Namespace string
	Class     string
}

// FormatError is returned when a test definition does not follow the
// <ModulePrefix>.Test.<SubNamespace>.<SimpleClassName> naming convention.
type FormatError struct {
	TestID    string
	ClassName string
	Reason    string
}

func (e *FormatError) Error() string {
	if e.TestID != "" {
		return fmt.Sprintf("invalid test definition (%s): %s: %s", e.TestID, e.Reason, e.ClassName)
	}
	return fmt.Sprintf("%s: %s", e.Reason, e.ClassName)
}

// ParseClassName splits className into project, namespace and simple class name:
//
//	Acme.Test.Billing.InvoiceTests -> Acme.Test, Acme.Test.Billing, InvoiceTests
func ParseClassName(className string) (QualifiedClassName, error) {
	match := fullClassNamePattern.FindStringSubmatch(className)
	if match == nil {
		return QualifiedClassName{}, &FormatError{
			ClassName: className,
			Reason:    "class name does not match <Prefix>.Test.<Namespace>.<Class>",
		}
	}

	prefix, subNamespace, class := match[1], match[2], match[3]
	return QualifiedClassName{
		Project:   prefix + ".Test",
		Namespace: prefix + ".Test." + subNamespace,
		Class:     class,
	}, nil
}
