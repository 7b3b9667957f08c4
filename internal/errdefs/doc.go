// Package errdefs defines the identity-carrying error types shared by the
// rest of the host.
//
// Every type in the taxonomy records the name of the thing that was wrong
// (a parameter, a dataset, or a dataset field) alongside a human-readable
// message. When the caller does not supply a message, one is generated from
// the identity fields at construction time, so an error value is always
// printable without further context.
//
// The hierarchy is built by struct embedding, and classification survives
// embedding: IsBadRequest reports true for every member of the taxonomy,
// IsBadParameter for the parameter branch, IsBadDataset for the dataset
// branch. Callers should classify with these predicates rather than by
// matching message strings.
package errdefs
