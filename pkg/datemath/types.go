package datemath

// DateLayout is the day key layout used throughout the service.
const DateLayout = "2006-01-02"
