// Package stage runs the external word2phrase and word2vec tools.
//
// Every invocation writes its input to a transport file in the runner's
// work directory, starts the tool, and waits for its exit status. Status 0
// means success; any other status is returned as an *ExitError carrying
// the code. Temporary files are removed on every path; removal failures
// are logged and never returned.
//
// File names are derived from a monotonic ULID owned by the Runner, so
// concurrent invocations on one Runner never collide.
package stage
