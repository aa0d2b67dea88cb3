// Package scanner walks a media library and yields the candidate files the
// dedupe engine will consider. All filtering that decides whether a file is
// even eligible lives here: extension matching, extras-folder exclusion,
// minimum size, and user-supplied include/exclude patterns. Invalid patterns
// fail construction; unreadable files and directories degrade to size 0 or
// an empty listing rather than aborting the walk.
package scanner
