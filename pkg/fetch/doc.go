// Package fetch is a thin JSON HTTP client with two calling conventions.
//
// Client.Fetch follows ordinary Go style and returns (*Reply, error). Safe
// wraps the same call in result.RunContext and returns a
// result.Outcome[*Reply] instead, so callers that work in Outcomes never see
// a bare error:
//
//	out := fetch.Safe(ctx, fetch.NewClient(), "https://api.example.com/rates")
//	if out.Failed() {
//	    return out.Failure()
//	}
//	reply, _ := out.Value()
//
// A non-2xx response is not an error; inspect Reply.Success. Decoded numbers
// are json.Number values, which the numeric operations accept directly.
package fetch
