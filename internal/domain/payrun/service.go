package payrun

import "context"

// Calculator runs the per-employee pay pipeline and the batch
// orchestration over it. CalculateRun is all-or-nothing: one failing
// employee fails the whole run.
type Calculator interface {
	CalculateEmployee(ctx context.Context, req CalculateEmployeeRequest) (EmployeeResult, error)
	CalculateRun(ctx context.Context, req CalculateRunRequest) (Run, error)
}
