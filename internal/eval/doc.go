// Package eval implements the expression language of bigcalc on top of the
// bigint and bigfloat packages.
//
// Grammar, loosest binding first:
//
//	expr    = term { ("+" | "-") term }
//	term    = unary { ("*" | "/" | "%") unary }
//	unary   = ("-" | "+") unary | power
//	power   = primary [ ("^" | "**") unary ]
//	primary = number | name | name "(" [ expr { "," expr } ] ")" | "(" expr ")"
//
// Integer literals take the 0x, 0o and 0b prefixes and '_' separators.
// A literal with a fraction or an exponent (1.5, 2e-3, 0x1.8p-2) is a
// float. Arithmetic stays exact on integers: "/" truncates and "%" takes
// the sign of the dividend. As soon as a float takes part, the operation
// is carried out in the configured float base and rounded to the
// configured context.
package eval
