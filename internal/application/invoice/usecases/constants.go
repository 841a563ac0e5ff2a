package usecases

// maxNumberAttempts bounds the duplicate-key retry loop for invoice number
// allocation.
const maxNumberAttempts = 3
