// Package linemark annotates the lines of a text file.
//
// Each qualifying line is rendered as
//
//	<uuid> - <original text>[<uppercase letter count>]
//
// and the rendered records are written only after the whole file has been
// read, so a read failure never produces partial output.
//
// # Basic Usage
//
//	a, err := linemark.New(linemark.Config{}, linemark.WithOutput(os.Stdout))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if _, err := a.Annotate(ctx, "notes.txt"); err != nil {
//	    log.Fatal(err)
//	}
//
// # Revisions
//
// [Config.Revision] selects historical behaviour. The default,
// [RevisionCurrent], skips blank lines and stamps each record with a fresh
// random UUID. [RevisionFreshID] keeps blank lines. [RevisionLegacy] keeps
// blank lines and stamps every record with the nil UUID.
//
// # Watching
//
// [Annotator.Watch] annotates the file once and again after every change
// until its context is canceled.
package linemark
