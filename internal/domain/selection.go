package domain

import "strconv"

// SelectionAll é o valor aceito na API para "sem filtro" em qualquer eixo
const SelectionAll = "all"

// BranchSelection é o filtro de filial. O valor zero significa todas as filiais.
type BranchSelection struct {
	id  string
	set bool
}

// SelectBranch cria uma seleção concreta de filial
func SelectBranch(id string) BranchSelection {
	return BranchSelection{id: id, set: true}
}

// AllBranches retorna a seleção sem filtro de filial
func AllBranches() BranchSelection {
	return BranchSelection{}
}

func (s BranchSelection) IsAll() bool { return !s.set }

func (s BranchSelection) ID() string { return s.id }

func (s BranchSelection) String() string {
	if s.IsAll() {
		return SelectionAll
	}
	return s.id
}

// YearSelection é o filtro de ano. O valor zero significa todos os anos.
type YearSelection struct {
	year int
	set  bool
}

// SelectYear cria uma seleção concreta de ano
func SelectYear(year int) YearSelection {
	return YearSelection{year: year, set: true}
}

// AllYears retorna a seleção sem filtro de ano
func AllYears() YearSelection {
	return YearSelection{}
}

func (s YearSelection) IsAll() bool { return !s.set }

func (s YearSelection) Year() int { return s.year }

// Previous retorna o ano anterior ao selecionado. Não existe anterior de "todos".
func (s YearSelection) Previous() (YearSelection, bool) {
	if s.IsAll() {
		return YearSelection{}, false
	}
	return SelectYear(s.year - 1), true
}

func (s YearSelection) String() string {
	if s.IsAll() {
		return SelectionAll
	}
	return strconv.Itoa(s.year)
}

// Selection é o par (filial, ano) aplicado a todas as visões derivadas
type Selection struct {
	Branch BranchSelection
	Year   YearSelection
}

// SelectionView é a forma serializável da seleção
type SelectionView struct {
	Branch string `json:"branch"`
	Year   string `json:"year"`
}

func (s Selection) View() SelectionView {
	return SelectionView{Branch: s.Branch.String(), Year: s.Year.String()}
}
