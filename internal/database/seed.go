package database

// SeedContacts is the demo directory inserted on first run
var SeedContacts = []struct {
	Name   string
	Detail string
}{
	{"Ada Lovelace", "ada@analytical.engine"},
	{"Alan Turing", "+44 20 7946 0001"},
	{"Anita Borg", "anita@systers.org"},
	{"Barbara Liskov", "+1 617 555 0142"},
	{"Bjarne Stroustrup", "bjarne@example.com"},
	{"Brian Kernighan", "+1 908 555 0199"},
	{"Claude Shannon", "claude@bell-labs.example"},
	{"Charles Babbage", "+44 20 7946 0002"},
	{"Dennis Ritchie", "dmr@example.com"},
	{"Donald Knuth", "+1 650 555 0110"},
	{"Edsger Dijkstra", "ewd@example.nl"},
	{"Frances Allen", "fran@example.com"},
	{"Fernando Corbató", "+1 617 555 0123"},
	{"Grace Hopper", "grace@navy.example"},
	{"Guido van Rossum", "guido@example.org"},
	{"Hedy Lamarr", "+1 310 555 0147"},
	{"Ivan Sutherland", "ivan@sketchpad.example"},
	{"John McCarthy", "jmc@example.edu"},
	{"Joan Clarke", "+44 20 7946 0003"},
	{"Ken Thompson", "ken@example.com"},
	{"Katherine Johnson", "+1 757 555 0161"},
	{"Leslie Lamport", "+1 650 555 0177"},
	{"Linus Torvalds", "linus@example.org"},
	{"Margaret Hamilton", "margaret@apollo.example"},
	{"Mary Allen Wilkes", "+1 617 555 0180"},
	{"Niklaus Wirth", "niklaus@example.ch"},
	{"Ole-Johan Dahl", "+47 22 55 01 02"},
	{"Peter Naur", "peter@example.dk"},
	{"Radia Perlman", "radia@example.com"},
	{"Rob Pike", "+1 650 555 0191"},
	{"Robert Griesemer", "robert@example.com"},
	{"Sophie Wilson", "+44 1223 555 014"},
	{"Shafi Goldwasser", "shafi@example.edu"},
	{"Tim Berners-Lee", "tim@w3.example"},
	{"Tony Hoare", "+44 1865 555 010"},
	{"Ursula Franklin", "+1 416 555 0102"},
	{"Vint Cerf", "vint@example.net"},
	{"Whitfield Diffie", "+1 650 555 0133"},
	{"Xiaoyun Wang", "xiaoyun@example.cn"},
	{"Yukihiro Matsumoto", "matz@example.jp"},
	{"Zhou Ji", "+86 10 5555 0101"},
	{"411 Directory Assistance", "411"},
}
