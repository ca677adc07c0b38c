// Package services contains domain services that implement business logic
// spanning more than one model package.
//
// DraftFactory encodes the default-composition policy for new drafts: the
// catalog's largest size with no toppings. It operates on catalog and order
// types but belongs to neither, which is why it lives here.
package services
