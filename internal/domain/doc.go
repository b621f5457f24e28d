// Package domain holds the error model shared by every layer of the service
// and the small set of entities (customers, accounts, transfers) the reference
// API operates on.
//
// Domain errors form a closed set: [*BusinessError] and [*ValidationError]
// are the only implementations of [DomainError]. Both are produced by
// builders whose Build method snapshots the accumulated state, so a built
// error never changes after construction:
//
//	err := domain.BusinessBuilderFor(domain.CodeResourceNotFound).
//	    Detail("userId", "123").
//	    Build()
//
//	verr := domain.NewValidationBuilder("INVALID_CUSTOMER", "").
//	    FieldError("email", "must be a valid address").
//	    GlobalError("customer is incomplete").
//	    Build()
//
// Inbound adapters never inspect these types directly; the HTTP error
// dispatcher translates them into problem responses.
package domain
