package langcode

// Count is the number of codes in the catalog.
const Count = 184

// Known codes in catalog order.
const (
	_ Code = iota
	Aa // Afar
	Ab // Abkhaz
	Af // Afrikaans
	Ak // Akan
	Sq // Albanian
	Am // Amharic
	Ar // Arabic
	An // Aragonese
	Hy // Armenian
	As // Assamese
	Av // Avaric
	Ae // Avestan
	Ay // Aymara
	Az // Azerbaijani
	Bm // Bambara
	Ba // Bashkir
	Eu // Basque
	Be // Belarusian
	Bn // Bengali
	Bh // Bihari
	Bi // Bislama
	Bs // Bosnian
	Br // Breton
	Bg // Bulgarian
	My // Burmese
	Ca // Catalan
	Ch // Chamorro
	Ce // Chechen
	Ny // Chichewa
	Zh // Chinese
	Cv // Chuvash
	Kw // Cornish
	Co // Corsican
	Cr // Cree
	Hr // Croatian
	Cs // Czech
	Da // Danish
	Dv // Divehi
	Nl // Dutch
	Dz // Dzongkha
	En // English
	Eo // Esperanto
	Et // Estonian
	Ee // Ewe
	Fo // Faroese
	Fj // Fijian
	Fi // Finnish
	Fr // French
	Ff // Fula
	Gl // Galician
	Ka // Georgian
	De // German
	El // Greek
	Gn // Guaraní
	Gu // Gujarati
	Ht // Haitian
	Ha // Hausa
	He // Hebrew
	Hz // Herero
	Hi // Hindi
	Ho // Hiri Motu
	Hu // Hungarian
	Ia // Interlingua
	Id // Indonesian
	Ie // Interlingue
	Ga // Irish
	Ig // Igbo
	Ik // Inupiaq
	Io // Ido
	Is // Icelandic
	It // Italian
	Iu // Inuktitut
	Ja // Japanese
	Jv // Javanese
	Kl // Kalaallisut
	Kn // Kannada
	Kr // Kanuri
	Ks // Kashmiri
	Kk // Kazakh
	Km // Khmer
	Ki // Kikuyu
	Rw // Kinyarwanda
	Ky // Kyrgyz
	Kv // Komi
	Kg // Kongo
	Ko // Korean
	Ku // Kurdish
	Kj // Kwanyama
	La // Latin
	Lb // Luxembourgish
	Lg // Ganda
	Li // Limburgish
	Ln // Lingala
	Lo // Lao
	Lt // Lithuanian
	Lu // Luba-Katanga
	Lv // Latvian
	Gv // Manx
	Mk // Macedonian
	Mg // Malagasy
	Ms // Malay
	Ml // Malayalam
	Mt // Maltese
	Mi // Māori
	Mr // Marathi
	Mh // Marshallese
	Mn // Mongolian
	Na // Nauruan
	Nv // Navajo
	Nd // Northern Ndebele
	Ne // Nepali
	Ng // Ndonga
	Nb // Norwegian Bokmål
	Nn // Norwegian Nynorsk
	No // Norwegian
	Ii // Nuosu
	Nr // Southern Ndebele
	Oc // Occitan
	Oj // Ojibwe
	Cu // Old Church Slavonic
	Om // Oromo
	Or // Oriya
	Os // Ossetian
	Pa // Punjabi
	Pi // Pāli
	Fa // Persian
	Pl // Polish
	Ps // Pashto
	Pt // Portuguese
	Qu // Quechua
	Rm // Romansh
	Rn // Kirundi
	Ro // Romanian
	Ru // Russian
	Sa // Sanskrit
	Sc // Sardinian
	Sd // Sindhi
	Se // Northern Sami
	Sm // Samoan
	Sg // Sango
	Sr // Serbian
	Gd // Gaelic
	Sn // Shona
	Si // Sinhalese
	Sk // Slovak
	Sl // Slovene
	So // Somali
	St // Southern Sotho
	Es // Spanish
	Su // Sundanese
	Sw // Swahili
	Ss // Swati
	Sv // Swedish
	Ta // Tamil
	Te // Telugu
	Tg // Tajik
	Th // Thai
	Ti // Tigrinya
	Bo // Tibetan
	Tk // Turkmen
	Tl // Tagalog
	Tn // Tswana
	To // Tonga
	Tr // Turkish
	Ts // Tsonga
	Tt // Tatar
	Tw // Twi
	Ty // Tahitian
	Ug // Uyghur
	Uk // Ukrainian
	Ur // Urdu
	Uz // Uzbek
	Ve // Venda
	Vi // Vietnamese
	Vo // Volapük
	Wa // Walloon
	Cy // Welsh
	Wo // Wolof
	Fy // Western Frisian
	Xh // Xhosa
	Yi // Yiddish
	Yo // Yoruba
	Za // Zhuang
	Zu // Zulu
)

type entry struct {
	code    string
	english string
	native  string
}

// catalog is indexed by Code-1.
var catalog = [Count]entry{
	{"aa", "Afar", "Afaraf"},
	{"ab", "Abkhaz", "аҧсуа бызшәа"},
	{"af", "Afrikaans", "Afrikaans"},
	{"ak", "Akan", "Akan"},
	{"sq", "Albanian", "Shqip"},
	{"am", "Amharic", "አማርኛ"},
	{"ar", "Arabic", "العربية"},
	{"an", "Aragonese", "aragonés"},
	{"hy", "Armenian", "Հայերեն"},
	{"as", "Assamese", "অসমীয়া"},
	{"av", "Avaric", "авар мацӀ"},
	{"ae", "Avestan", "avesta"},
	{"ay", "Aymara", "aymar aru"},
	{"az", "Azerbaijani", "azərbaycan dili"},
	{"bm", "Bambara", "bamanankan"},
	{"ba", "Bashkir", "башҡорт теле"},
	{"eu", "Basque", "euskara"},
	{"be", "Belarusian", "беларуская мова"},
	{"bn", "Bengali", "বাংলা"},
	{"bh", "Bihari", "भोजपुरी"},
	{"bi", "Bislama", "Bislama"},
	{"bs", "Bosnian", "bosanski jezik"},
	{"br", "Breton", "brezhoneg"},
	{"bg", "Bulgarian", "български език"},
	{"my", "Burmese", "ဗမာစာ"},
	{"ca", "Catalan", "català"},
	{"ch", "Chamorro", "Chamoru"},
	{"ce", "Chechen", "нохчийн мотт"},
	{"ny", "Chichewa", "chiCheŵa"},
	{"zh", "Chinese", "中文"},
	{"cv", "Chuvash", "чӑваш чӗлхи"},
	{"kw", "Cornish", "Kernewek"},
	{"co", "Corsican", "corsu"},
	{"cr", "Cree", "ᓀᐦᐃᔭᐍᐏᐣ"},
	{"hr", "Croatian", "hrvatski jezik"},
	{"cs", "Czech", "čeština"},
	{"da", "Danish", "dansk"},
	{"dv", "Divehi", "ދިވެހި"},
	{"nl", "Dutch", "Nederlands"},
	{"dz", "Dzongkha", "རྫོང་ཁ"},
	{"en", "English", "English"},
	{"eo", "Esperanto", "Esperanto"},
	{"et", "Estonian", "eesti"},
	{"ee", "Ewe", "Eʋegbe"},
	{"fo", "Faroese", "føroyskt"},
	{"fj", "Fijian", "vosa Vakaviti"},
	{"fi", "Finnish", "suomi"},
	{"fr", "French", "français"},
	{"ff", "Fula", "Fulfulde"},
	{"gl", "Galician", "galego"},
	{"ka", "Georgian", "ქართული"},
	{"de", "German", "Deutsch"},
	{"el", "Greek", "ελληνικά"},
	{"gn", "Guaraní", "Avañe'ẽ"},
	{"gu", "Gujarati", "ગુજરાતી"},
	{"ht", "Haitian", "Kreyòl ayisyen"},
	{"ha", "Hausa", "هَوُسَ"},
	{"he", "Hebrew", "עברית"},
	{"hz", "Herero", "Otjiherero"},
	{"hi", "Hindi", "हिन्दी"},
	{"ho", "Hiri Motu", "Hiri Motu"},
	{"hu", "Hungarian", "magyar"},
	{"ia", "Interlingua", "Interlingua"},
	{"id", "Indonesian", "Bahasa Indonesia"},
	{"ie", "Interlingue", "Interlingue"},
	{"ga", "Irish", "Gaeilge"},
	{"ig", "Igbo", "Asụsụ Igbo"},
	{"ik", "Inupiaq", "Iñupiaq"},
	{"io", "Ido", "Ido"},
	{"is", "Icelandic", "Íslenska"},
	{"it", "Italian", "Italiano"},
	{"iu", "Inuktitut", "ᐃᓄᒃᑎᑐᑦ"},
	{"ja", "Japanese", "日本語"},
	{"jv", "Javanese", "basa Jawa"},
	{"kl", "Kalaallisut", "kalaallisut"},
	{"kn", "Kannada", "ಕನ್ನಡ"},
	{"kr", "Kanuri", "Kanuri"},
	{"ks", "Kashmiri", "कश्मीरी"},
	{"kk", "Kazakh", "қазақ тілі"},
	{"km", "Khmer", "ខ្មែរ"},
	{"ki", "Kikuyu", "Gĩkũyũ"},
	{"rw", "Kinyarwanda", "Ikinyarwanda"},
	{"ky", "Kyrgyz", "Кыргызча"},
	{"kv", "Komi", "коми кыв"},
	{"kg", "Kongo", "Kikongo"},
	{"ko", "Korean", "한국어"},
	{"ku", "Kurdish", "Kurdî"},
	{"kj", "Kwanyama", "Kuanyama"},
	{"la", "Latin", "lingua latina"},
	{"lb", "Luxembourgish", "Lëtzebuergesch"},
	{"lg", "Ganda", "Luganda"},
	{"li", "Limburgish", "Limburgs"},
	{"ln", "Lingala", "Lingála"},
	{"lo", "Lao", "ພາສາລາວ"},
	{"lt", "Lithuanian", "lietuvių kalba"},
	{"lu", "Luba-Katanga", "Tshiluba"},
	{"lv", "Latvian", "latviešu valoda"},
	{"gv", "Manx", "Gaelg"},
	{"mk", "Macedonian", "македонски јазик"},
	{"mg", "Malagasy", "fiteny malagasy"},
	{"ms", "Malay", "bahasa Melayu"},
	{"ml", "Malayalam", "മലയാളം"},
	{"mt", "Maltese", "Malti"},
	{"mi", "Māori", "te reo Māori"},
	{"mr", "Marathi", "मराठी"},
	{"mh", "Marshallese", "Kajin M̧ajeļ"},
	{"mn", "Mongolian", "Монгол хэл"},
	{"na", "Nauruan", "Dorerin Naoero"},
	{"nv", "Navajo", "Diné bizaad"},
	{"nd", "Northern Ndebele", "isiNdebele"},
	{"ne", "Nepali", "नेपाली"},
	{"ng", "Ndonga", "Owambo"},
	{"nb", "Norwegian Bokmål", "Norsk bokmål"},
	{"nn", "Norwegian Nynorsk", "Norsk nynorsk"},
	{"no", "Norwegian", "Norsk"},
	{"ii", "Nuosu", "ꆈꌠ꒿ Nuosuhxop"},
	{"nr", "Southern Ndebele", "isiNdebele"},
	{"oc", "Occitan", "occitan"},
	{"oj", "Ojibwe", "ᐊᓂᔑᓈᐯᒧᐎᓐ"},
	{"cu", "Old Church Slavonic", "ѩзыкъ словѣньскъ"},
	{"om", "Oromo", "Afaan Oromoo"},
	{"or", "Oriya", "ଓଡ଼ିଆ"},
	{"os", "Ossetian", "ирон æвзаг"},
	{"pa", "Punjabi", "ਪੰਜਾਬੀ"},
	{"pi", "Pāli", "पाऴि"},
	{"fa", "Persian", "فارسی"},
	{"pl", "Polish", "język polski"},
	{"ps", "Pashto", "پښتو"},
	{"pt", "Portuguese", "Português"},
	{"qu", "Quechua", "Runa Simi"},
	{"rm", "Romansh", "rumantsch grischun"},
	{"rn", "Kirundi", "Ikirundi"},
	{"ro", "Romanian", "Română"},
	{"ru", "Russian", "Русский"},
	{"sa", "Sanskrit", "संस्कृतम्"},
	{"sc", "Sardinian", "sardu"},
	{"sd", "Sindhi", "सिन्धी"},
	{"se", "Northern Sami", "Davvisámegiella"},
	{"sm", "Samoan", "gagana fa'a Samoa"},
	{"sg", "Sango", "yângâ tî sängö"},
	{"sr", "Serbian", "српски језик"},
	{"gd", "Gaelic", "Gàidhlig"},
	{"sn", "Shona", "chiShona"},
	{"si", "Sinhalese", "සිංහල"},
	{"sk", "Slovak", "slovenčina"},
	{"sl", "Slovene", "slovenski jezik"},
	{"so", "Somali", "Soomaaliga"},
	{"st", "Southern Sotho", "Sesotho"},
	{"es", "Spanish", "Español"},
	{"su", "Sundanese", "Basa Sunda"},
	{"sw", "Swahili", "Kiswahili"},
	{"ss", "Swati", "SiSwati"},
	{"sv", "Swedish", "svenska"},
	{"ta", "Tamil", "தமிழ்"},
	{"te", "Telugu", "తెలుగు"},
	{"tg", "Tajik", "тоҷикӣ"},
	{"th", "Thai", "ไทย"},
	{"ti", "Tigrinya", "ትግርኛ"},
	{"bo", "Tibetan", "བོད་ཡིག"},
	{"tk", "Turkmen", "Türkmençe"},
	{"tl", "Tagalog", "Wikang Tagalog"},
	{"tn", "Tswana", "Setswana"},
	{"to", "Tonga", "faka Tonga"},
	{"tr", "Turkish", "Türkçe"},
	{"ts", "Tsonga", "Xitsonga"},
	{"tt", "Tatar", "татар теле"},
	{"tw", "Twi", "Twi"},
	{"ty", "Tahitian", "Reo Tahiti"},
	{"ug", "Uyghur", "ئۇيغۇرچە"},
	{"uk", "Ukrainian", "Українська"},
	{"ur", "Urdu", "اردو"},
	{"uz", "Uzbek", "Oʻzbek"},
	{"ve", "Venda", "Tshivenḓa"},
	{"vi", "Vietnamese", "Tiếng Việt"},
	{"vo", "Volapük", "Volapük"},
	{"wa", "Walloon", "walon"},
	{"cy", "Welsh", "Cymraeg"},
	{"wo", "Wolof", "Wollof"},
	{"fy", "Western Frisian", "Frysk"},
	{"xh", "Xhosa", "isiXhosa"},
	{"yi", "Yiddish", "ייִדיש"},
	{"yo", "Yoruba", "Yorùbá"},
	{"za", "Zhuang", "Saɯ cueŋƅ"},
	{"zu", "Zulu", "isiZulu"},
}
