package ports

import "go.trai.ch/xform/internal/core/domain"

// TransformListener is notified around every actual (non-cached)
// transformer invocation. Before is always paired with exactly one After,
// even when the invocation panics or returns an error.
//
//go:generate go run go.uber.org/mock/mockgen -source=listener.go -destination=mocks/mock_listener.go -package=mocks
type TransformListener interface {
	BeforeTransformerInvocation(transformerName string, subject domain.TransformationSubject)
	AfterTransformerInvocation(transformerName string, subject domain.TransformationSubject)
}
