package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"schema-migrator/internal/common"
)

// Diagnostics holds everything reported while converting one input.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity
	// Code is a unique identifier for this kind of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Scope names the container the problem was found in (a view, a tab group).
	Scope string
	// Subject names the field or attribute concerned (if any).
	Subject string
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticWarning
	DiagnosticError
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticInfo:
		return "info"
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, scope, subject string) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity: DiagnosticError,
		Code:     code,
		Message:  message,
		Scope:    scope,
		Subject:  subject,
	})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, scope, subject string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: DiagnosticWarning,
		Code:     code,
		Message:  message,
		Scope:    scope,
		Subject:  subject,
	})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, scope, subject string) {
	d.Infos = append(d.Infos, Diagnostic{
		Severity: DiagnosticInfo,
		Code:     code,
		Message:  message,
		Scope:    scope,
		Subject:  subject,
	})
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// WarningCodes returns the codes of all warnings, in the order they were added.
func (d *Diagnostics) WarningCodes() []string {
	codes := make([]string, 0, len(d.Warnings))
	for _, w := range d.Warnings {
		codes = append(codes, w.Code)
	}

	return codes
}

// Error returns a combined error from all error diagnostics, or nil if there are none.
func (d *Diagnostics) Error() error {
	if !d.HasErrors() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// Log writes every diagnostic to logger at the matching level.
func (d *Diagnostics) Log(logger *zap.Logger) {
	if logger == nil {
		return
	}

	for _, group := range [][]Diagnostic{d.Errors, d.Warnings, d.Infos} {
		for _, diag := range group {
			fields := []zap.Field{zap.String("code", diag.Code)}
			if diag.Scope != "" {
				fields = append(fields, zap.String("scope", diag.Scope))
			}

			if diag.Subject != "" {
				fields = append(fields, zap.String("subject", diag.Subject))
			}

			switch diag.Severity {
			case DiagnosticError:
				logger.Error(diag.Message, fields...)
			case DiagnosticWarning:
				logger.Warn(diag.Message, fields...)
			default:
				logger.Info(diag.Message, fields...)
			}
		}
	}
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Scope != "" {
		prefix = append(prefix, "["+d.Scope+"]")
	}

	if d.Subject != "" {
		prefix = append(prefix, d.Subject)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
