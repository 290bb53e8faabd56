package sarima

// Diagnostics describes the quality of a completed fit. Non-convergence is
// reported here rather than as an error from Fit.
type Diagnostics struct {
	LogLikelihood   float64
	AIC             float64
	BIC             float64
	AICc            float64
	Variance        float64
	Converged       bool
	Status          string
	Iterations      int
	FuncEvaluations int
}
