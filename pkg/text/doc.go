// Package text is the catalog of validated string operations.
//
// Every operation accepts its input as any, runs it through the text
// pipeline with the merged configuration, applies its own constraints and
// returns a result.Outcome:
//
//	text.SnakeCase("helloWorld")     // success: "hello_world"
//	text.CamelCase("___")            // constraint failure
//	text.Truncate("hello world", 5)  // success: "he..."
//	text.IsPalindrome("A man, a plan, a canal: Panama") // success: true
//
// Case transforms are fixed points: applying one to its own output returns
// the output unchanged.
package text
