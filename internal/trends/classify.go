package trends

import "strings"

// categoryKeywords is an ordered table: classification walks it top to
// bottom and the first category with a matching keyword wins, so the
// order is part of the behavior. Keywords are matched as lowercase
// substrings of the title.
type categoryKeywords struct {
	Category string
	Keywords []string
}

var categoryTable = []categoryKeywords{
	{"world", []string{
		"विश्व", "वर्ल्ड", "अंतरराष्ट्रीय", "अंतर्राष्ट्रीय", "इंटरनेशनल", "world", "international",
		"अमेरिका", "america", "टैरिफ", "tariff", "ट्रम्प", "trump", "चीन", "china",
		"पाकिस्तान", "pakistan", "यूक्रेन", "ukraine", "रूस", "russia",
	}},
	{"national", []string{
		"राष्ट्रीय", "देश", "नेशनल", "national", "india", "भारत", "राजनीति", "politics",
		"गुजरात", "gujarat", "पुल", "bridge", "मोदी", "modi", "सरकार", "government",
		"मंत्री", "minister", "चुनाव", "election", "संसद", "parliament",
		"लोकसभा", "loksabha", "राज्यसभा", "rajyasabha",
	}},
	{"entertainment", []string{
		"मनोरंजन", "एंटरटेनमेंट", "entertainment", "बॉलीवुड", "bollywood", "फिल्म", "film",
		"अभिनेता", "actor", "अभिनेत्री", "actress", "श्रीदेवी", "sridevi", "यश", "yash",
		"शहाना", "shahana", "अक्षय", "akshay", "शाहरुख", "shahrukh", "सलमान", "salman",
		"आमिर", "aamir", "सिनेमा", "cinema", "टीवी", "tv", "सीरियल", "serial",
	}},
	{"sports", []string{
		"खेल", "स्पोर्ट्स", "sports", "क्रिकेट", "cricket", "फुटबॉल", "football",
		"टेनिस", "tennis", "आईपीएल", "ipl", "गेम", "game", "मैच", "match",
		"टूर्नामेंट", "tournament", "ओलंपिक", "olympic", "विश्वकप", "worldcup",
		"बैडमिंटन", "badminton", "हॉकी", "hockey",
	}},
	{"business", []string{
		"व्यापार", "बिजनेस", "business", "company", "कंपनी", "शेयर", "share",
		"बाजार", "market", "अर्थव्यवस्था", "economy", "निवेश", "investment",
	}},
	{"technology", []string{
		"तकनीक", "टेक्नोलॉजी", "technology", "टेक", "tech", "कंप्यूटर", "computer",
		"स्मार्टफोन", "smartphone", "मोबाइल", "mobile", "लैपटॉप", "laptop",
		"इंटरनेट", "internet", "सॉफ्टवेयर", "software", "ऐप", "app",
		"आर्टिफिशियल इंटेलिजेंस", "artificial intelligence", "एआई", "ai",
		"मशीन लर्निंग", "machine learning", "डेटा", "data", "क्लाउड", "cloud",
		"साइबर", "cyber", "cybersecurity", "हैकिंग", "hacking", "cybercrime",
		"डिजिटल", "digital", "e-governance", "ई-कॉमर्स", "e-commerce",
		"ऑनलाइन", "online", "वेब", "web", "वेबसाइट", "website",
		"सोशल मीडिया", "social media", "फेसबुक", "facebook", "ट्विटर", "twitter",
		"इंस्टाग्राम", "instagram", "यूट्यूब", "youtube", "व्हाट्सऐप", "whatsapp",
		"टेलीग्राम", "telegram", "ब्लॉकचेन", "blockchain", "क्रिप्टो", "crypto",
		"बिटकॉइन", "bitcoin", "एथेरियम", "ethereum", "nft", "मेटावर्स", "metaverse",
		"virtual reality", "augmented reality", "5जी", "5g", "6जी", "6g",
		"वाई-फाई", "wifi", "ब्लूटूथ", "bluetooth", "गैलेक्सी", "galaxy",
		"आईफोन", "iphone", "एंड्रॉइड", "android", "आईओएस", "ios",
		"माइक्रोसॉफ्ट", "microsoft", "गूगल", "google", "एप्पल", "apple",
		"अमेज़न", "amazon", "फ्लिपकार्ट", "flipkart", "पेटीएम", "paytm",
		"फोनपे", "phonepay", "google pay", "यूपीआई", "upi",
		"digital payment", "online payment", "स्टार्टअप", "startup",
		"यूनिकॉर्न", "unicorn", "फिनटेक", "fintech", "edtech", "healthtech",
		"प्लेटफॉर्म", "platform", "एपीआई", "api", "जावास्क्रिप्ट", "javascript",
		"पायथन", "python", "डेवलपर", "developer", "प्रोग्रामर", "programmer",
		"हैकर", "hacker", "आईटी", "it sector", "tech company",
		"silicon valley", "बेंगलुरु", "bangalore", "हैदराबाद", "hyderabad",
		"इनोवेशन", "innovation", "जीपीयू", "gpu", "सीपीयू", "cpu", "रैम", "ram",
		"प्रोसेसर", "processor", "चिप", "chip", "सेमीकंडक्टर", "semiconductor",
		"इंटेल", "intel", "क्वालकॉम", "qualcomm", "मीडियाटेक", "mediatek",
		"एनवीडिया", "nvidia", "टेस्ला", "tesla", "स्पेसएक्स", "spacex",
		"नेटफ्लिक्स", "netflix", "टिकटॉक", "tiktok", "स्नैपचैट", "snapchat",
		"गिटहब", "github", "work from home", "remote work",
		"tech job", "it job", "tech salary", "tech career", "tech skill",
		"coding", "programming", "online education", "e-learning",
	}},
	{"education", []string{
		"शिक्षा", "education", "स्कूल", "school", "कॉलेज", "college",
		"यूनिवर्सिटी", "university", "परीक्षा", "exam", "छात्र", "student",
		"शिक्षक", "teacher",
	}},
	{"career", []string{
		"करियर", "career", "नौकरी", "job", "रोजगार", "employment",
		"सरकारी नौकरी", "sarkari naukri",
	}},
	{"fact_check", []string{
		"फैक्ट चेक", "fact check", "फैक्ट", "fact", "जांच", "verify",
		"सत्यापन", "verification",
	}},
	{"crime", []string{
		"अपराध", "crime", "हत्या", "murder", "चोरी", "theft", "डकैती", "robbery",
		"बलात्कार", "rape", "हमला", "attack", "गिरफ्तार", "arrest", "पुलिस", "police",
		"थाना", "police station", "मुकदमा", "case", "अदालत", "court", "जेल", "jail",
		"कैद", "prison", "सजा", "punishment", "फांसी", "hanging", "मौत", "death",
		"शव", "dead body", "खून", "blood", "हिंसा", "violence", "आतंक", "terror",
		"आतंकवाद", "terrorism", "बम", "bomb", "फायरिंग", "firing", "गोली", "bullet",
		"चाकू", "knife", "मारपीट", "assault", "धमकी", "threat", "खतरा", "danger",
		"अपहरण", "kidnapping", "अगवा", "abduction", "फिरौती", "ransom", "लूट", "loot",
		"धोखा", "fraud", "घोटाला", "scam", "भ्रष्टाचार", "corruption", "रिश्वत", "bribe",
		"नकली", "fake", "जालसाजी", "forgery", "अवैध", "illegal", "गैरकानूनी", "unlawful",
	}},
	{"religion", []string{
		"धर्म", "religion", "पूजा", "worship", "मंदिर", "temple", "मस्जिद", "mosque",
		"गुरुद्वारा", "gurudwara", "चर्च", "church", "ईश्वर", "god", "भगवान", "bhagwan",
		"अल्लाह", "allah", "कृष्ण", "krishna", "राम", "ram", "शिव", "shiva",
		"दुर्गा", "durga", "लक्ष्मी", "lakshmi", "सरस्वती", "saraswati",
		"गणेश", "ganesh", "हनुमान", "hanuman", "बुद्ध", "buddha", "महावीर", "mahavir",
		"गुरु", "guru", "संत", "saint", "साधु", "sadhu", "पंडित", "pandit",
		"आरती", "aarti", "भजन", "bhajan", "कीर्तन", "kirtan", "प्रार्थना", "prayer",
		"नमाज", "namaz", "व्रत", "fast", "उपवास", "upvas", "हवन", "havan",
		"यज्ञ", "yagya", "मंत्र", "mantra", "वेद", "veda", "पुराण", "purana",
		"गीता", "geeta", "कुरान", "quran", "बाइबिल", "bible", "रामायण", "ramayan",
		"महाभारत", "mahabharat", "हिंदू", "hindu", "मुस्लिम", "muslim", "सिख", "sikh",
		"ईसाई", "christian", "जैन", "jain", "बौद्ध", "buddhist", "धार्मिक", "religious",
		"आध्यात्मिक", "spiritual", "कर्म", "karma", "पंचांग", "panchang",
		"ज्योतिष", "astrology", "कुंडली", "kundali", "राशि", "zodiac",
		"नक्षत्र", "nakshatra", "शनि", "saturn", "राहु", "rahu", "केतु", "ketu",
	}},
	{"health", []string{
		"स्वास्थ्य", "health", "मेडिकल", "medical", "डॉक्टर", "doctor",
		"हॉस्पिटल", "hospital", "दवा", "medicine", "इलाज", "treatment",
		"बीमारी", "disease", "रोग", "illness", "संक्रमण", "infection",
		"वायरस", "virus", "बैक्टीरिया", "bacteria", "फ्लू", "flu", "बुखार", "fever",
		"खांसी", "cough", "जुकाम", "cold", "सिरदर्द", "headache", "दर्द", "pain",
		"चोट", "injury", "घाव", "wound", "फ्रैक्चर", "fracture", "सर्जरी", "surgery",
		"ऑपरेशन", "operation", "टीका", "vaccine", "इंजेक्शन", "injection",
		"एक्सरे", "xray", "एमआरआई", "mri", "डायबिटीज", "diabetes", "हृदय", "heart",
		"कैंसर", "cancer", "टीबी", "tb", "एड्स", "aids", "कोविड", "covid",
		"कोरोना", "corona", "महामारी", "pandemic", "आयुर्वेद", "ayurveda",
		"योग", "yoga", "प्राणायाम", "pranayam", "ध्यान", "meditation",
		"होम्योपैथी", "homeopathy", "फिजियोथेरेपी", "physiotherapy",
		"तनाव", "stress", "अवसाद", "depression", "चिंता", "anxiety",
		"mental health", "पोषण", "nutrition", "आहार", "diet", "विटामिन", "vitamin",
		"प्रोटीन", "protein", "कैल्शियम", "calcium", "इम्यूनिटी", "immunity",
		"पाचन", "digestion", "लिवर", "liver", "किडनी", "kidney", "फेफड़े", "lungs",
		"दिमाग", "brain", "मांसपेशी", "muscle", "हड्डी", "bone", "त्वचा", "skin",
		"गर्भावस्था", "pregnancy",
	}},
	{"interesting-news", []string{
		"रोचक", "अनोखा", "मजेदार", "रहस्य", "इतिहास", "trivia", "curious", "weird",
		"मिस्ट्री", "mystery", "interesting", "fact", "अनसुलझा", "unsolved",
		"अविश्वसनीय", "unbelievable", "gk", "सामान्य ज्ञान", "general knowledge",
		"amazing", "funny", "strange", "odd", "bizarre", "unusual", "unique",
		"record", "world record", "गिनीज", "guinness", "rare", "unexplained",
		"legend", "myth", "mythology", "superstition", "धारणा", "विश्वास",
		"मान्यता", "किवदंती", "लोककथा", "folklore", "कहानी", "कथा",
		"adventure", "discovery", "invention", "phenomenon", "paranormal",
		"supernatural", "ghost", "haunted", "alien", "ufo", "bermuda triangle",
		"समुद्र", "जहाज", "shipwreck", "डूबा", "डूबे", "missing", "disappeared",
	}},
	{"वायरल", []string{
		"वायरल", "viral", "अजब", "गजब", "सोशल", "social", "trending", "trend",
	}},
	{"उत्तर प्रदेश", []string{
		"उत्तर प्रदेश", "uttar pradesh", "up", "यूपी", "up news",
	}},
}

// Classify assigns a category to a headline by ordered keyword lookup.
// Falls back to source-name hints, then to "national".
func Classify(title string, sources []string) string {
	titleLower := strings.ToLower(title)

	for _, entry := range categoryTable {
		for _, kw := range entry.Keywords {
			if strings.Contains(titleLower, kw) {
				return entry.Category
			}
		}
	}

	sourceHas := func(sub string) bool {
		for _, s := range sources {
			if strings.Contains(strings.ToLower(s), sub) {
				return true
			}
		}
		return false
	}

	switch {
	case strings.Contains(titleLower, "world") || sourceHas("world"):
		return "world"
	case strings.Contains(titleLower, "entertainment") || sourceHas("entertainment"):
		return "entertainment"
	case strings.Contains(titleLower, "technology") || sourceHas("tech"):
		return "technology"
	case strings.Contains(titleLower, "education") || sourceHas("education"):
		return "education"
	case strings.Contains(titleLower, "career") || sourceHas("career"):
		return "career"
	}

	return "national"
}
