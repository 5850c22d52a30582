package models

// DefaultAvatar is the placeholder image reference given to new candidates
const DefaultAvatar = "/image.png?height=40&width=40"

// BoardTitle is the heading shown above the board
const BoardTitle = "Internship Hiring Pipeline"

// EmptyColumnMessage is shown in a column with no candidates
const EmptyColumnMessage = "No candidates yet"
