package daisy

// Float64 returns a pointer to v, for optional numeric props such as
// ProgressProps.Max.
func Float64(v float64) *float64 { return &v }

// Int returns a pointer to v, for optional props such as RatingProps.Max.
func Int(v int) *int { return &v }
