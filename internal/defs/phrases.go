package defs

// Реплики врагов. Озвучиваются sink'ом, умеющим речь; остальные только логируют.
var (
	SpawnPhrases = []string{"Contact!", "There he is!", "Move in!", "Flank him!", "Target spotted!"}
	PainPhrase   = "ouch"
	DeathPhrases = []string{"Man down!", "Argh!", "I'm hit bad!"}
)
