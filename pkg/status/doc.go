/*
Package status tracks what happened to each file during a markfix run and
reports it to the user.

	            +-------------+
	            |   Status    |
	            |  (Results)  |
	            +------+------+
	                   |
	      +-----------+-----------+
	      |                       |
	+-----+-----+           +----+-----+
	|   Files   |           | Reporter |
	| (Disk IO) |           | (stdout) |
	+-----------+           +----------+

🎯 Purpose:
- Records one FileResult per candidate file (fixed, unchanged, skipped, failed)
- Keeps results in traversal order so the fixed list matches discovery order
- Owns file reads and whole-file writes through FileManager
- Prints the per-file notices and the final totals

🔄 Output:

	Fixed MARK comments in: <path>
	...

	Total files fixed: <count>

A dry run prints "Would fix" notices and "Total files to fix". When any file
failed an extra "Total files failed" line follows the totals.
*/
package status
