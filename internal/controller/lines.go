package controller

import (
	"fmt"
	"strings"

	m "verify.dev/pkg/verify/internal/model"
)

// StartLine is the first line of every run.
const StartLine = "Running tests..."

const (
	testPrefix       = "Test "
	failedSuffix     = " failed:"
	summaryPrefix    = "Succeeded: "
	succeedSuffix    = " succeeded."
	noTestsMessage   = "No tests found"
	noReportsMessage = "No reports found"
)

// FailureHeader names a failed test case.
func FailureHeader(name string) string {
	return testPrefix + name + failedSuffix
}

// SuccessLine names a passed test case.
func SuccessLine(name string) string {
	return testPrefix + name + succeedSuffix
}

// SummaryLine reports both counters of a finished run.
func SummaryLine(summary m.Summary) string {
	return fmt.Sprintf("%s%d. Failed: %d", summaryPrefix, summary.Succeeded, summary.Failed)
}

func isFailureHeader(line string) bool {
	return strings.HasPrefix(line, testPrefix) && strings.HasSuffix(line, failedSuffix)
}

func isSuccessLine(line string) bool {
	return strings.HasPrefix(line, testPrefix) && strings.HasSuffix(line, succeedSuffix)
}

func isSummaryLine(line string) bool {
	return strings.HasPrefix(line, summaryPrefix)
}
