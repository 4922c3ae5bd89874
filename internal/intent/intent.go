package intent

// Intent is the single capability domain selected for an utterance.
type Intent string

const (
	Conversation  Intent = "conversation"
	Knowledge     Intent = "knowledge"
	WebSearch     Intent = "web_search"
	Vision        Intent = "vision"
	OpenApp       Intent = "open_app"
	CloseApp      Intent = "close_app"
	OpenWebsite   Intent = "open_website"
	Screenshot    Intent = "screenshot"
	SystemStatus  Intent = "system_status"
	VolumeControl Intent = "volume_control"
	Identity      Intent = "identity"
	Reset         Intent = "reset"
	Exit          Intent = "exit"
)

// priorityTiers orders intents most specific first. Control commands are rare
// and unambiguous when present; Conversation is the universal catch-all.
// Order inside a tier is the declaration-order tie-break after matched span.
var priorityTiers = [][]Intent{
	{Exit, Reset, Identity},
	{Vision},
	{OpenWebsite},
	{OpenApp, CloseApp},
	{Screenshot, SystemStatus, VolumeControl},
	{WebSearch, Knowledge},
	{Conversation},
}

func tierOf(in Intent) (tier, pos int) {
	for t, intents := range priorityTiers {
		for p, candidate := range intents {
			if candidate == in {
				return t, p
			}
		}
	}
	return len(priorityTiers), 0
}

// All lists every intent the rule table must cover, Conversation excluded
// because it is the default rather than a triggered domain.
func All() []Intent {
	return []Intent{
		Knowledge, WebSearch, Vision,
		OpenApp, CloseApp, OpenWebsite,
		Screenshot, SystemStatus, VolumeControl,
		Identity, Reset, Exit,
	}
}
