package domain

import "time"

// Severity is the level of a validation diagnostic.
type Severity string

// Diagnostic severities. Errors and warnings are structurally identical;
// the distinction is a rendering hint.
const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// ValidationErrorType identifies a validation rule. Instances are
// interned package-level values, not re-created per diagnostic.
type ValidationErrorType struct {
	// Name is the stable machine identifier of the rule.
	Name string `json:"name"`

	// Description is the human-readable rule explanation.
	Description string `json:"description"`
}

// String returns the rule's machine identifier.
func (t ValidationErrorType) String() string {
	return t.Name
}

// The rule catalogue of the remote rule engine, plus TypeValidationError
// used when a transport failure has to be surfaced as a diagnostic.
var (
	TypeInvalidJSON = ValidationErrorType{
		Name: "invalid_json", Description: "JSON syntax is invalid or malformed"}
	TypeMissingField = ValidationErrorType{
		Name: "missing_field", Description: "Required field is missing from the netlist"}
	TypeInvalidFormat = ValidationErrorType{
		Name: "invalid_format", Description: "Netlist format is invalid or unexpected"}
	TypeBlankComponentName = ValidationErrorType{
		Name: "blank_component_name", Description: "Component names cannot be blank or empty"}
	TypeBlankNetName = ValidationErrorType{
		Name: "blank_net_name", Description: "Net names cannot be blank or empty"}
	TypeDuplicateComponentName = ValidationErrorType{
		Name: "duplicate_component_name", Description: "Component names must be unique within the netlist"}
	TypeDuplicateNetName = ValidationErrorType{
		Name: "duplicate_net_name", Description: "Net names must be unique within the netlist"}
	TypeDuplicateName = ValidationErrorType{
		Name: "duplicate_name", Description: "Names must be unique across components and nets"}
	TypeMissingGround = ValidationErrorType{
		Name: "missing_ground", Description: "No ground nets found in the netlist"}
	TypeInsufficientGndConnections = ValidationErrorType{
		Name: "insufficient_gnd_connections", Description: "Ground nets should have multiple connections"}
	TypeGroundPinNotConnectedToGround = ValidationErrorType{
		Name: "ground_pin_not_connected_to_ground", Description: "Pins marked as ground type should be connected to ground nets"}
	TypePowerPinNotConnectedToPower = ValidationErrorType{
		Name: "power_pin_not_connected_to_power", Description: "Pins marked as power type should be connected to power nets"}
	TypeClockNetSingleConnection = ValidationErrorType{
		Name: "clock_net_single_connection", Description: "Clock nets typically should have multiple connections"}
	TypeNetTypeNameMismatch = ValidationErrorType{
		Name: "net_type_name_mismatch", Description: "Net type doesn't match net name convention"}
	TypeMisnamedNets = ValidationErrorType{
		Name: "misnamed_nets", Description: "Nets may be misnamed based on their connectivity patterns"}
	TypeOrphanedNet = ValidationErrorType{
		Name: "orphaned_net", Description: "Nets must have at least one connection"}
	TypeUnconnectedComponent = ValidationErrorType{
		Name: "unconnected_component", Description: "Components should be connected to nets"}
	TypeValidationError = ValidationErrorType{
		Name: "validation_error", Description: "Validation could not be completed"}
)

// ValidationError is a single diagnostic (error or warning) about a
// netlist.
type ValidationError struct {
	// ErrorType is the rule that produced this diagnostic.
	ErrorType ValidationErrorType `json:"error_type"`

	// Message is the human-readable description of the problem.
	Message string `json:"message"`

	// ComponentID names the component if the diagnostic is
	// component-specific.
	ComponentID string `json:"component_id,omitempty"`

	// NetID names the net if the diagnostic is net-specific.
	NetID string `json:"net_id,omitempty"`

	// Severity is "error" or "warning".
	Severity Severity `json:"severity"`

	// Location anchors the diagnostic in the source text. May be nil
	// for whole-document rules; consumers must degrade gracefully
	// (no decoration, no navigation) rather than fail.
	Location *LocationInfo `json:"location,omitempty"`
}

// ValidationResult is the outcome of one validation call. The session
// controller holds at most one current result; older results are
// discarded, never merged.
type ValidationResult struct {
	// IsValid is true when no errors were found. Warnings are allowed.
	IsValid bool `json:"is_valid"`

	// Errors are the diagnostics that must be fixed.
	Errors []ValidationError `json:"errors"`

	// Warnings are the diagnostics that should be reviewed.
	Warnings []ValidationError `json:"warnings"`

	// ValidationTimestamp is when validation was performed.
	ValidationTimestamp time.Time `json:"validation_timestamp"`

	// ValidationRulesApplied lists the rules that were checked.
	ValidationRulesApplied []ValidationErrorType `json:"validation_rules_applied"`

	// AutoFillSuggestions holds optional remediation hints keyed by
	// document path.
	AutoFillSuggestions map[string]any `json:"auto_fill_suggestions,omitempty"`
}

// Diagnostics returns errors followed by warnings as one flat list.
func (r *ValidationResult) Diagnostics() []ValidationError {
	out := make([]ValidationError, 0, len(r.Errors)+len(r.Warnings))
	out = append(out, r.Errors...)
	out = append(out, r.Warnings...)
	return out
}

// NewTransportFailureResult synthesizes the result published when a
// validation call fails without carrying a diagnostic payload, so
// consumers always have a non-nil result to render.
func NewTransportFailureResult(message string) *ValidationResult {
	return &ValidationResult{
		IsValid: false,
		Errors: []ValidationError{{
			ErrorType: TypeValidationError,
			Message:   message,
			Severity:  SeverityError,
		}},
		Warnings:               []ValidationError{},
		ValidationTimestamp:    time.Now().UTC(),
		ValidationRulesApplied: []ValidationErrorType{},
	}
}
