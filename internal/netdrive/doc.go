// Package netdrive mounts, unmounts, and inspects Windows network drives.
//
// Operations shell out to the net and wmic commands and parse their textual
// output. Command execution goes through the Runner interface so every
// parsing path can be exercised against canned transcripts.
package netdrive
