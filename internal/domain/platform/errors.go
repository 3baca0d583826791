package platform

import "errors"

// ErrStatsNotFound is returned by a StatsFetcher when the remote platform has
// no user for the given handle, or when the platform is unreachable or its
// response cannot be parsed. The two conditions are deliberately collapsed at
// the adapter boundary: callers cannot act on the difference, so adapters log
// the underlying cause and surface this single sentinel.
var ErrStatsNotFound = errors.New("platform stats not found")
