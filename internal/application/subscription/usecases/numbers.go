package usecases

// maxNumberAttempts bounds the duplicate-key retry loop for document number
// allocation. Collisions need two creates racing the same read; three rounds
// is plenty.
const maxNumberAttempts = 3
