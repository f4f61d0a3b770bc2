package roster

var firstNames = []string{
	"Jack", "Mike", "Carlos", "David", "Jose", "Alex", "Ryan", "Kevin", "Luis", "Matt",
	"Chris", "John", "Tyler", "Brandon", "Marcus", "Victor", "Derek", "Josh", "Nick", "Dan",
	"Tony", "Jake", "Sam", "Eric", "Ben",
}

var lastNames = []string{
	"Rodriguez", "Martinez", "Johnson", "Williams", "Garcia", "Brown", "Davis", "Miller", "Wilson", "Moore",
	"Taylor", "Anderson", "Thomas", "Jackson", "White", "Harris", "Martin", "Thompson", "Lee", "Walker",
	"Hall", "Allen", "Young", "King", "Wright", "Lopez", "Hill", "Scott", "Green", "Adams",
}
