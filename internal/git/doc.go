// Package git runs the git executable on behalf of the autotag CLI.
//
// Commands run in a fixed working directory (git -C dir), capture stdout and
// stderr, and translate failures into *output.ExitError values:
//
//	repo := git.New(dir, log)
//	clean, err := repo.IsClean(ctx)
//	exists, err := repo.TagExists(ctx, "v1.4.0")
//	err = repo.CreateTag(ctx, "v1.4.0", "")
//
// A missing git binary and a failing git command are both system errors
// (exit code 2). The stderr of a failing command becomes the error message.
package git
