package opensearch

import "errors"

var (
	// ErrConnectionFailed indicates the client could not be created.
	ErrConnectionFailed = errors.New("opensearch connection failed")

	// ErrHealthcheckFailed indicates the cluster is unreachable or unhealthy.
	ErrHealthcheckFailed = errors.New("opensearch healthcheck failed")

	ErrNilClient = errors.New("opensearch client is nil")

	// ErrSearchFailed wraps non-2xx search responses.
	ErrSearchFailed = errors.New("opensearch search failed")
)
