package models

// questionBank is the fixed, ordered questionnaire. Ids are stable across releases.
var questionBank = []Question{
	{ID: 1, Text: "Teve dor de cabeça?", Category: "Cabeça"},
	{ID: 2, Text: "Teve sensação de desmaio?", Category: "Cabeça"},
	{ID: 3, Text: "Teve tontura?", Category: "Cabeça"},
	{ID: 4, Text: "Seus olhos têm lacrimejado ou coçado?", Category: "Olhos"},
	{ID: 5, Text: "Seus olhos têm ficado inchados, vermelhos ou com os cílios colando?", Category: "Olhos"},
	{ID: 6, Text: "Teve bolsas ou olheiras abaixo dos olhos?", Category: "Olhos"},
	{ID: 7, Text: "Teve visão borrada ou em túnel? (Desconsidere miopia e astigmatismo)", Category: "Olhos"},
	{ID: 8, Text: "Sentiu coceira no ouvido?", Category: "Ouvidos"},
	{ID: 9, Text: "Sentiu dores ou teve infecções no ouvido?", Category: "Ouvidos"},
	{ID: 10, Text: "Retirou fluido purulento do ouvido?", Category: "Ouvidos"},
	{ID: 11, Text: "Sentiu zumbido ou perda de audição?", Category: "Ouvidos"},
	{ID: 12, Text: "Seu nariz tem ficado entupido?", Category: "Respiratório Sup."},
	{ID: 13, Text: "Teve sinusite?", Category: "Respiratório Sup."},
	{ID: 14, Text: "Teve rinite?", Category: "Respiratório Sup."},
	{ID: 15, Text: "Teve ataques de espirros?", Category: "Respiratório Sup."},
	{ID: 16, Text: "Teve muco(meleca) no nariz?", Category: "Respiratório Sup."},
	{ID: 17, Text: "Teve tosse crônica?", Category: "Garganta"},
	{ID: 18, Text: "Teve pigarro (necessidade de limpar a garganta)?", Category: "Garganta"},
	{ID: 19, Text: "Teve dor de garganta, rouquidão ou ficou sem voz?", Category: "Garganta"},
	{ID: 20, Text: "Teve inchaço nos lábios, língua ou nas gengivas?", Category: "Boca"},
	{ID: 21, Text: "Teve aftas?", Category: "Boca"},
	{ID: 22, Text: "Teve espinhas?", Category: "Pele"},
	{ID: 23, Text: "Teve feridas que coçam ou erupções?", Category: "Pele"},
	{ID: 24, Text: "Sua pele ficou seca ou ressecada?", Category: "Pele"},
	{ID: 25, Text: "Teve perda de cabelo?", Category: "Pele"},
	{ID: 26, Text: "Teve vermelhidão na pele ou sentido calorões?", Category: "Pele"},
	{ID: 27, Text: "Tem suado muito sem fazer exercício?", Category: "Pele"},
	{ID: 28, Text: "Sentiu batimentos irregulares no coração?", Category: "Cardíaco"},
	{ID: 29, Text: "Sentiu falta de ar ao realizar pequenas tarefas?", Category: "Resp. / Energia"},
	{ID: 30, Text: "Sentiu aperto no peito ao respirar?", Category: "Resp. / Energia"},
	{ID: 31, Text: "Teve crises de cansaço extremo sem explicação?", Category: "Resp. / Energia"},
	{ID: 32, Text: "Teve dificuldade para dormir ou sono leve?", Category: "Resp. / Energia"},
	{ID: 33, Text: "Acordou cansado mesmo após dormir bem?", Category: "Resp. / Energia"},
	{ID: 34, Text: "Sentiu sonolência excessiva durante o dia?", Category: "Resp. / Energia"},
	{ID: 35, Text: "Sentiu azia ou queimação no estômago?", Category: "Digestivo"},
	{ID: 36, Text: "Teve náuseas após as refeições?", Category: "Digestivo"},
	{ID: 37, Text: "Sentiu inchaço abdominal?", Category: "Digestivo"},
	{ID: 38, Text: "Teve gases excessivos?", Category: "Digestivo"},
	{ID: 39, Text: "Teve constipação intestinal?", Category: "Digestivo"},
	{ID: 40, Text: "Teve diarreia recorrente?", Category: "Digestivo"},
	{ID: 41, Text: "Sentiu dor abdominal após comer?", Category: "Digestivo"},
	{ID: 42, Text: "Sentiu sensação de digestão lenta?", Category: "Digestivo"},
	{ID: 43, Text: "Sentiu dores musculares sem realizar esforço?", Category: "Muscular"},
	{ID: 44, Text: "Sentiu rigidez ao acordar?", Category: "Muscular"},
	{ID: 45, Text: "Sentiu dores nas articulações?", Category: "Muscular"},
	{ID: 46, Text: "Teve câimbras frequentes?", Category: "Muscular"},
	{ID: 47, Text: "Sentiu fraqueza muscular durante o dia?", Category: "Muscular"},
	{ID: 48, Text: "Teve dificuldade de concentração?", Category: "Neurológico"},
	{ID: 49, Text: "Teve lapsos de memória?", Category: "Neurológico"},
	{ID: 50, Text: "Teve irritabilidade sem motivo aparente?", Category: "Neurológico"},
	{ID: 51, Text: "Sentiu ansiedade repentina?", Category: "Neurológico"},
	{ID: 52, Text: "Teve dificuldade para relaxar?", Category: "Neurológico"},
	{ID: 53, Text: "Sentiu alteração repentina de humor?", Category: "Neurológico"},
	{ID: 54, Text: "Pegou resfriados com facilidade?", Category: "Imunológico"},
	{ID: 55, Text: "Sentiu febre baixa sem explicação?", Category: "Imunológico"},
	{ID: 56, Text: "Teve infecções recorrentes na pele?", Category: "Imunológico"},
	{ID: 57, Text: "Sentiu aumento na sensibilidade a alergias?", Category: "Imunológico"},
	{ID: 58, Text: "Sentiu coceiras pelo corpo sem causa aparente?", Category: "Imunológico"},
	{ID: 59, Text: "Ganhou peso rapidamente sem mudar a alimentação?", Category: "Metabolismo"},
	{ID: 60, Text: "Perdeu peso rapidamente sem mudar a alimentação?", Category: "Metabolismo"},
	{ID: 61, Text: "Sentiu fome excessiva?", Category: "Metabolismo"},
	{ID: 62, Text: "Sentiu diminuição repentina do apetite?", Category: "Metabolismo"},
	{ID: 63, Text: "Sentiu sede excessiva ao longo do dia?", Category: "Metabolismo"},
}

// Questions returns a copy of the question bank in display order.
func Questions() []Question {
	return append([]Question(nil), questionBank...)
}

// QuestionByID looks a question up by its stable id.
func QuestionByID(id int) (Question, bool) {
	for _, q := range questionBank {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

// Categories returns the distinct categories of qs in order of first appearance.
func Categories(qs []Question) []string {
	seen := map[string]struct{}{}
	var out []string
	for _, q := range qs {
		if _, ok := seen[q.Category]; ok {
			continue
		}
		seen[q.Category] = struct{}{}
		out = append(out, q.Category)
	}
	return out
}
