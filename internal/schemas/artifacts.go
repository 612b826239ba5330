package schemas

import (
	_ "embed"
)

// Embedded schemas for the pipeline's JSON artifacts.
var (
	//go:embed experience_record.schema.json
	experienceRecordSchema string

	//go:embed policy_tables.schema.json
	policyTablesSchema string

	//go:embed optimization_report.schema.json
	optimizationReportSchema string
)

// ValidateExperienceRecord validates experience record JSON content.
func ValidateExperienceRecord(jsonContent string) error {
	return ValidateJSONString(experienceRecordSchema, jsonContent)
}

// ValidatePolicyTables validates policy table JSON content.
func ValidatePolicyTables(jsonContent string) error {
	return ValidateJSONString(policyTablesSchema, jsonContent)
}

// ValidateOptimizationReport validates optimization report JSON content.
func ValidateOptimizationReport(jsonContent string) error {
	return ValidateJSONString(optimizationReportSchema, jsonContent)
}
