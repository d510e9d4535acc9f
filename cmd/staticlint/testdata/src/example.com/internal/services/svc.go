package services

import "time"

type Options struct {
	Clock func() time.Time
}

func defaults() Options {
	return Options{Clock: time.Now}
}

func expired(deadline time.Time) bool {
	return deadline.Before(time.Now()) // want "direct call time.Now\\(\\) is not allowed"
}

func viaClock(o Options) time.Time {
	return o.Clock()
}
