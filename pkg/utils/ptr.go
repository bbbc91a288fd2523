package utils

func StringPtr(s string) *string { return &s }

func IntPtr(i int) *int { return &i }

func Float64Ptr(f float64) *float64 { return &f }
