package util

import (
	"fmt"
	"log"

	"github.com/aws/aws-sdk-go/aws/awserr"
)

// FormatAWSError renders an error the way the response body reports it:
// AWS platform errors carry their code and message, anything else is
// stringified as unexpected.
func FormatAWSError(err error) string {
	if aerr, ok := err.(awserr.Error); ok {
		return fmt.Sprintf("AWS Error: %s - %s", aerr.Code(), aerr.Message())
	}
	return fmt.Sprintf("Unexpected error: %s", err)
}

func LogAWSError(format string, err error, v ...interface{}) {
	if aerr, ok := err.(awserr.Error); ok {
		log.Printf(format, aerr, v)
	} else {
		log.Printf(format, err, v)
	}
}
