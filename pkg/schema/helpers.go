package schema

// Float64 returns a pointer for use in MinNumber constraints.
func Float64(v float64) *float64 {
	return &v
}

// Int64 returns a pointer for use in MinInt constraints.
func Int64(v int64) *int64 {
	return &v
}
