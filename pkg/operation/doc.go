/*
Package operation implements the core business logic of markfix: finding
candidate files and rewriting their MARK comments.

	+-------------+
	|  Operation  |
	| (fix/check) |
	+------+------+
	       |
	+------+------+
	|   Runner    |
	| (walk, jobs)|
	+------+------+
	       |
	+------+------+
	| processFile |
	| (normalize) |
	+-------------+

🎯 Purpose:
- Walks the root with the configured exclusions (package walk)
- Reads each candidate once, rejects content that is not UTF-8
- Normalizes markers (package mark) and writes back only when bytes changed
- Hands every result to the status reporter in traversal order

🔄 Error policy:
By default a failing file is recorded as failed and the run continues; the
summary then separates fixed from failed files. With Config.FailFast the first
failure aborts the run and the totals are not printed.

⚡ Concurrency:
Config.Jobs == 1 processes one file completely before the next is read.
Larger values collect the candidates first and process them with a bounded
errgroup; results are still reported in traversal order.

🔍 Example:

	fixed, err := operation.Fix(ctx, root, config.Default(), os.Stdout)
*/
package operation
