package constants

import "time"

const (
	AppName = "ynab2splitwise"

	DefaultYNABBaseURL      = "https://api.ynab.com/v1"
	DefaultSplitwiseBaseURL = "https://secure.splitwise.com/api/v3.0"

	DefaultSinceDays   = 1
	DefaultHTTPTimeout = 30 * time.Second

	MaxNameLen = 100
)
