// Package value holds the validated primitives of the Audio Definition Model.
//
// Values are built only through New* and Parse* functions, which reject text
// and numbers outside the domain of the type with an ErrValueFormat error.
// Holding a value is therefore proof that it passed validation.
package value
