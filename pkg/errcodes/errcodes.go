package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InvalidNumber    failure.ErrorCode = "InvalidNumber"    // параметр есть, но это не целое число
	MissingParameter failure.ErrorCode = "MissingParameter" // обязательный query-параметр не передан
	FactUnavailable  failure.ErrorCode = "FactUnavailable"  // сервис фактов не ответил 200
)
