package assist

import (
	"fmt"
	"strings"

	"github.com/vanihq/vani/internal/desktop"
	"github.com/vanihq/vani/internal/intent"
	"github.com/vanihq/vani/internal/language"
)

// Response templates per language. English is the fallback for any language
// without its own entry.

var goodbyeMsg = map[language.Language]string{
	language.English:  "Goodbye! %s signing off.",
	language.Hindi:    "अलविदा! %s विदा ले रही है।",
	language.Gujarati: "આવજો! %s જતી રહી છે.",
}

var resetMsg = map[language.Language]string{
	language.English:  "Conversation history cleared",
	language.Hindi:    "बातचीत का इतिहास साफ़ हो गया",
	language.Gujarati: "વાતચીત ઇતિહાસ સાફ થયો",
}

var identityMsg = map[language.Language]string{
	language.English:  "I am %s, your voice assistant. I can chat with you, search the web, look through the camera, and control this desktop.",
	language.Hindi:    "मैं %s हूं, आपकी वॉयस असिस्टेंट। मैं आपसे बात कर सकती हूं, वेब पर खोज सकती हूं, कैमरे से देख सकती हूं और यह डेस्कटॉप चला सकती हूं।",
	language.Gujarati: "હું %s છું, તમારી વૉઇસ આસિસ્ટન્ટ. હું તમારી સાથે વાત કરી શકું છું, વેબ પર શોધી શકું છું, કેમેરાથી જોઈ શકું છું અને આ ડેસ્કટોપ ચલાવી શકું છું.",
}

var visionPrefixMsg = map[language.Language]string{
	language.English:  "I can see: ",
	language.Hindi:    "मैं देख रहा हूं: ",
	language.Gujarati: "હું જોઈ રહ્યો છું: ",
}

var cameraUnavailableMsg = map[language.Language]string{
	language.English:  "I cannot access the camera right now",
	language.Hindi:    "मैं कैमरा एक्सेस नहीं कर पा रहा हूं",
	language.Gujarati: "હું કેમેરાને ઍક્સેસ કરી શકતો નથી",
}

var staleVisionMsg = map[language.Language]string{
	language.English:  "I am not looking at anything right now. Ask me to take a look first.",
	language.Hindi:    "अभी मैं कुछ नहीं देख रही हूं। पहले मुझे देखने के लिए कहें।",
	language.Gujarati: "હમણાં હું કંઈ જોઈ રહી નથી. પહેલા મને જોવાનું કહો.",
}

var openingAppMsg = map[language.Language]string{
	language.English:  "Opening %s",
	language.Hindi:    "%s खोल दिया",
	language.Gujarati: "%s ખોલ્યું",
}

var closedAppMsg = map[language.Language]string{
	language.English:  "Closed %s",
	language.Hindi:    "%s बंद कर दिया",
	language.Gujarati: "%s બંધ કર્યું",
}

var openingSiteMsg = map[language.Language]string{
	language.English:  "Opening %s",
	language.Hindi:    "%s खोल रहा हूं",
	language.Gujarati: "%s ખોલી રહ્યો છું",
}

var screenshotMsg = map[language.Language]string{
	language.English:  "Screenshot saved to %s",
	language.Hindi:    "स्क्रीनशॉट %s में सेव हो गया",
	language.Gujarati: "સ્ક્રીનશોટ %s માં સેવ થયો",
}

var systemStatusMsg = map[language.Language]string{
	language.English:  "Load: %s. Memory: %d%%. Battery: %s.",
	language.Hindi:    "लोड: %s। मेमोरी: %d%%। बैटरी: %s।",
	language.Gujarati: "લોડ: %s. મેમરી: %d%%. બેટરી: %s.",
}

var batteryChargingMsg = map[language.Language]string{
	language.English:  "%d%% (charging)",
	language.Hindi:    "%d%% (चार्ज हो रही है)",
	language.Gujarati: "%d%% (ચાર્જ થઈ રહી છે)",
}

var batteryDischargingMsg = map[language.Language]string{
	language.English:  "%d%% (on battery)",
	language.Hindi:    "%d%% (बैटरी पर)",
	language.Gujarati: "%d%% (બેટરી પર)",
}

var batteryAbsentMsg = map[language.Language]string{
	language.English:  "N/A",
	language.Hindi:    "उपलब्ध नहीं",
	language.Gujarati: "ઉપલબ્ધ નથી",
}

var volumeMsg = map[string]map[language.Language]string{
	desktop.VolumeUp: {
		language.English:  "Volume increased",
		language.Hindi:    "आवाज़ बढ़ा दी",
		language.Gujarati: "અવાજ વધાર્યો",
	},
	desktop.VolumeDown: {
		language.English:  "Volume decreased",
		language.Hindi:    "आवाज़ कम कर दी",
		language.Gujarati: "અવાજ ઓછો કર્યો",
	},
	desktop.VolumeMute: {
		language.English:  "Volume muted",
		language.Hindi:    "आवाज़ बंद कर दी",
		language.Gujarati: "અવાજ બંધ કર્યો",
	},
}

var searchHeaderMsg = map[language.Language]string{
	language.English:  "Here is what I found:",
	language.Hindi:    "यह मिला:",
	language.Gujarati: "આ મળ્યું:",
}

var searchNotFoundMsg = map[language.Language]string{
	language.English:  "I could not find information about that",
	language.Hindi:    "मुझे इसके बारे में जानकारी नहीं मिली",
	language.Gujarati: "મને તેના વિશે માહિતી મળી નથી",
}

var collaboratorDownMsg = map[language.Language]string{
	language.English:  "I am having trouble thinking right now. Please try again.",
	language.Hindi:    "मुझे अभी जवाब देने में दिक्कत हो रही है। कृपया दोबारा कोशिश करें।",
	language.Gujarati: "મને હમણાં જવાબ આપવામાં તકલીફ થઈ રહી છે. કૃપા કરીને ફરી પ્રયાસ કરો.",
}

var emptyPromptMsg = map[language.Language]string{
	language.English:  "I did not catch that. Could you say it again?",
	language.Hindi:    "मैंने सुना नहीं। फिर से कहें?",
	language.Gujarati: "મેં સાંભળ્યું નહીં. ફરીથી કહો?",
}

// clarifyMsg maps a missing slot name to the question asked instead of
// dispatching to a collaborator.
var clarifyMsg = map[string]map[language.Language]string{
	intent.SlotApp: {
		language.English:  "Which application do you mean?",
		language.Hindi:    "कौन सा एप्लिकेशन?",
		language.Gujarati: "કઈ એપ્લિકેશન?",
	},
	intent.SlotSite: {
		language.English:  "Which website should I open?",
		language.Hindi:    "कौन सी वेबसाइट खोलूं?",
		language.Gujarati: "કઈ વેબસાઇટ ખોલું?",
	},
	intent.SlotDirection: {
		language.English:  "Should I turn the volume up, down, or mute it?",
		language.Hindi:    "आवाज़ बढ़ाऊं, कम करूं या बंद करूं?",
		language.Gujarati: "અવાજ વધારું, ઓછો કરું કે બંધ કરું?",
	},
}

var clarifyGenericMsg = map[language.Language]string{
	language.English:  "Could you be more specific?",
	language.Hindi:    "थोड़ा और स्पष्ट बताएं?",
	language.Gujarati: "થોડું વધુ સ્પષ્ટ કહો?",
}

func localize(m map[language.Language]string, lang language.Language) string {
	if s, ok := m[lang]; ok {
		return s
	}
	return m[language.English]
}

func localizef(m map[language.Language]string, lang language.Language, args ...any) string {
	return fmt.Sprintf(localize(m, lang), args...)
}

func clarifyFor(slot string, lang language.Language) string {
	if m, ok := clarifyMsg[slot]; ok {
		return localize(m, lang)
	}
	return localize(clarifyGenericMsg, lang)
}

func formatStatus(st desktop.Status, lang language.Language) string {
	battery := localize(batteryAbsentMsg, lang)
	if st.BatteryPresent {
		if st.BatteryState == "charging" {
			battery = localizef(batteryChargingMsg, lang, st.BatteryPct)
		} else {
			battery = localizef(batteryDischargingMsg, lang, st.BatteryPct)
		}
	}
	load := st.LoadAverage
	if strings.TrimSpace(load) == "" {
		load = "?"
	}
	return localizef(systemStatusMsg, lang, load, st.MemoryUsedPct, battery)
}
