package chat

// FailureReply is shown in place of an answer when a turn fails.
const FailureReply = "Sorry, something went wrong while answering. Please try again."
