// Package export ties the start-offset resolver and the EDL/FCPXML
// generators together and hands the finished artifact to a file-write
// collaborator. One export runs to completion at a time per destination; a
// lock file rejects a second concurrent export against the same target.
package export
