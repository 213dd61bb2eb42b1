package service

import "github.com/forecast-service-result/internal/result"

// Result is the single-type form of result.Result: the error side is
// always a service Error.
type Result[T any] = result.Result[T, Error]

func ForResult[T any](value T) Result[T] {
	return result.FromResult[T, Error](value)
}

// ForError needs the type parameter spelled out; there is no value to infer
// it from.
func ForError[T any](err Error) Result[T] {
	return result.FromError[T](err)
}

func ForPartial[T any](value T, err Error) Result[T] {
	return result.FromPartial(value, err)
}
