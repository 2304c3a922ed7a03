package world

import "strings"

// Message tags used by the engine. Titles may carry several messages
// per tag for variety; one is drawn at random.
const (
	MsgBlocked        = "Blocked"
	MsgDead           = "Dead"
	MsgUnknown        = "Unknown"
	MsgWrongWay       = "WrongWay"
	MsgGetSuccess     = "GetSuccess"
	MsgGetFailed      = "GetFailed"
	MsgGetAlive       = "GetAlive"
	MsgDropSuccess    = "DropSuccess"
	MsgDropFailed     = "DropFailed"
	MsgPetSuccess     = "PetSuccess"
	MsgPetFailed      = "PetFailed"
	MsgShooSuccess    = "ShooSuccess"
	MsgShooFailed     = "ShooFailed"
	MsgInvEmpty       = "InvEmpty"
	MsgLookNothing    = "LookNothing"
	MsgLookNotHere    = "LookNotHere"
	MsgNotCarried     = "NotCarried"
	MsgWrongVerb      = "WrongVerb"
	MsgHealthUp       = "HealthUp"
	MsgHealthDown     = "HealthDown"
	MsgHealthOver     = "HealthOver"
	MsgFortune        = "Fortune"
	MsgFortuneText    = "FortuneText"
	MsgUnlock         = "Unlock"
	MsgTeleport       = "Teleport"
	MsgFollow         = "Follow"
	MsgMonsterAppears = "MonsterAppears"
	MsgAttackNobody   = "AttackNobody"
	MsgAttackNoWeapon = "AttackNoWeapon"
	MsgAttackWrong    = "AttackWrong"
	MsgAttackHit      = "AttackHit"
	MsgAttackKill     = "AttackKill"
	MsgMonsterHits    = "MonsterHits"
	MsgMonsterMisses  = "MonsterMisses"
)

// Message is one tagged flavor string. The template may contain a
// single {0} placeholder.
type Message struct {
	Tag  string `json:"tag"`
	Text string `json:"text"`
}

// Fill substitutes the placeholder in a message template.
func Fill(template, value string) string {
	return strings.ReplaceAll(template, "{0}", value)
}
