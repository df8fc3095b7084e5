// Package dictionary holds the static lookup tables consulted by the
// text analyser: common misspellings with corrections, and informal
// words with formal alternatives. The tables are read-only; lookups
// are safe for concurrent use.
package dictionary

// misspellings maps lower-cased misspelled words to suggested
// corrections, best candidate first.
var misspellings = map[string][]string{
	"teh":          {"the"},
	"recieve":      {"receive"},
	"recieved":     {"received"},
	"seperate":     {"separate"},
	"definately":   {"definitely"},
	"occured":      {"occurred"},
	"occurence":    {"occurrence"},
	"accomodate":   {"accommodate"},
	"acheive":      {"achieve"},
	"beleive":      {"believe"},
	"buisness":     {"business"},
	"calender":     {"calendar"},
	"collegue":     {"colleague"},
	"comittee":     {"committee"},
	"commitee":     {"committee"},
	"concensus":    {"consensus"},
	"embarass":     {"embarrass"},
	"enviroment":   {"environment"},
	"existance":    {"existence"},
	"experiance":   {"experience"},
	"futher":       {"further"},
	"goverment":    {"government"},
	"gaurantee":    {"guarantee"},
	"harrass":      {"harass"},
	"immediatly":   {"immediately"},
	"independant":  {"independent"},
	"liason":       {"liaison"},
	"maintainance": {"maintenance"},
	"managment":    {"management"},
	"neccessary":   {"necessary"},
	"occassion":    {"occasion"},
	"oppurtunity":  {"opportunity"},
	"persistant":   {"persistent"},
	"posession":    {"possession"},
	"prefered":     {"preferred"},
	"reccomend":    {"recommend"},
	"recomend":     {"recommend"},
	"refered":      {"referred"},
	"relevent":     {"relevant"},
	"succesful":    {"successful"},
	"sucessful":    {"successful"},
	"supercede":    {"supersede"},
	"tommorow":     {"tomorrow"},
	"truely":       {"truly"},
	"untill":       {"until"},
	"wich":         {"which", "witch"},
	"wierd":        {"weird"},
	"alot":         {"a lot"},
	"thier":        {"their"},
	"adress":       {"address"},
	"sincerly":     {"sincerely"},
}

// informal maps lower-cased informal words to formal alternatives.
var informal = map[string][]string{
	"wanna":     {"want to"},
	"gonna":     {"going to"},
	"gotta":     {"have to", "must"},
	"kinda":     {"somewhat", "rather"},
	"sorta":     {"somewhat"},
	"dunno":     {"do not know"},
	"yeah":      {"yes"},
	"yep":       {"yes"},
	"nope":      {"no"},
	"ok":        {"acceptable", "satisfactory"},
	"okay":      {"acceptable", "satisfactory"},
	"stuff":     {"materials", "items"},
	"things":    {"matters", "items"},
	"guys":      {"colleagues", "team members"},
	"awesome":   {"excellent", "impressive"},
	"cool":      {"excellent", "agreeable"},
	"huge":      {"substantial", "considerable"},
	"lots":      {"many", "numerous"},
	"totally":   {"completely", "entirely"},
	"really":    {"truly", "genuinely"},
	"super":     {"extremely", "particularly"},
	"crazy":     {"remarkable", "extraordinary"},
	"asap":      {"as soon as possible", "at your earliest convenience"},
	"thanks":    {"thank you"},
	"hi":        {"dear"},
	"hey":       {"dear"},
	"btw":       {"incidentally"},
	"fyi":       {"for your information"},
	"anyways":   {"in any case"},
	"basically": {"essentially", "fundamentally"},
}

// LookupSpelling returns correction suggestions for a lower-cased
// word, or false if the word is not a known misspelling.
func LookupSpelling(word string) ([]string, bool) {
	s, ok := misspellings[word]
	return s, ok
}

// LookupTone returns formal alternatives for a lower-cased word, or
// false if the word is not flagged as informal.
func LookupTone(word string) ([]string, bool) {
	s, ok := informal[word]
	return s, ok
}

// SpellingEntries returns the number of known misspellings.
func SpellingEntries() int {
	return len(misspellings)
}

// ToneEntries returns the number of known informal words.
func ToneEntries() int {
	return len(informal)
}
