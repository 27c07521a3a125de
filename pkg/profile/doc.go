// Package profile loads named validation profiles from a YAML file.
//
// A profile carries a numeric and a text override. Callers layer them
// between the defaults and their own per-call overrides:
//
//	reg, err := profile.Load("profiles.yaml")
//	p, ok := reg.Get("strict")
//	out := numeric.Clamp(v, lo, hi, p.Numeric, callOverride)
package profile
