// Package fallback provides the "try primary, degrade to secondary" step shared
// by the project stale-cache path and the meeting lazy-pull path.
package fallback

// Do runs primary. If primary fails, secondary receives the error and decides
// whether to recover with a degraded value or to return an error of its own.
func Do[T any](primary func() (T, error), secondary func(error) (T, error)) (T, error) {
	v, err := primary()
	if err == nil {
		return v, nil
	}
	return secondary(err)
}
