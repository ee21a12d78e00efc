// This file is part of Gopherboy.
//
// Gopherboy is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherboy is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherboy.  If not, see <https://www.gnu.org/licenses/>.

package instructions

// the primary instruction table. TakenCycles is only specified when it differs
// from Cycles.
var definitions = [256]Definition{
	{OpCode: 0x00, Mnemonic: "NOP", Bytes: 1, Cycles: 4, Category: Control},
	{OpCode: 0x01, Mnemonic: "LD BC,d16", Bytes: 3, Cycles: 12, Category: Load16},
	{OpCode: 0x02, Mnemonic: "LD (BC),A", Bytes: 1, Cycles: 8, Category: Load},
	{OpCode: 0x03, Mnemonic: "INC BC", Bytes: 1, Cycles: 8, Category: ALU16},
	{OpCode: 0x04, Mnemonic: "INC B", Bytes: 1, Cycles: 4, Category: ALU},
	{OpCode: 0x05, Mnemonic: "DEC B", Bytes: 1, Cycles: 4, Category: ALU},
	{OpCode: 0x06, Mnemonic: "LD B,d8", Bytes: 2, Cycles: 8, Category: Load},
	{OpCode: 0x07, Mnemonic: "RLCA", Bytes: 1, Cycles: 4, Category: ALU},
	{OpCode: 0x08, Mnemonic: "LD (a16),SP", Bytes: 3, Cycles: 20, Category: Load16},
	{OpCode: 0x09, Mnemonic: "ADD HL,BC", Bytes: 1, Cycles: 8, Category: ALU16},
	{OpCode: 0x0a, Mnemonic: "LD A,(BC)", Bytes: 1, Cycles: 8, Category: Load},
	{OpCode: 0x0b, Mnemonic: "DEC BC", Bytes: 1, Cycles: 8, Category: ALU16},
	{OpCode: 0x0c, Mnemonic: "INC C", Bytes: 1, Cycles: 4, Category: ALU},
	{OpCode: 0x0d, Mnemonic: "DEC C", Bytes: 1, Cycles: 4, Category: ALU},
	{OpCode: 0x0e, Mnemonic: "LD C,d8", Bytes: 2, Cycles: 8, Category: Load},
	{OpCode: 0x0f, Mnemonic: "RRCA", Bytes: 1, Cycles: 4, Category: ALU},
	{OpCode: 0x10, Mnemonic: "STOP", Bytes: 2, Cycles: 4, Category: Control},
	{OpCode: 0x11, Mnemonic: "LD DE,d16", Bytes: 3, Cycles: 12, Category: Load16},
	{OpCode: 0x12, Mnemonic: "LD (DE),A", Bytes: 1, Cycles: 8, Category: Load},
	{OpCode: 0x13, Mnemonic: "INC DE", Bytes: 1, Cycles: 8, Category: ALU16},
	{OpCode: 0x14, Mnemonic: "INC D", Bytes: 1, Cycles: 4, Category: ALU},
	{OpCode: 0x15, Mnemonic: "DEC D", Bytes: 1, Cycles: 4, Category: ALU},
	{OpCode: 0x16, Mnemonic: "LD D,d8", Bytes: 2, Cycles: 8, Category: Load},
	{OpCode: 0x17, Mnemonic: "RLA", Bytes: 1, Cycles: 4, Category: ALU},
	{OpCode: 0x18, Mnemonic: "JR r8", Bytes: 2, Cycles: 12, Category: Flow},
	{OpCode: 0x19, Mnemonic: "ADD HL,DE", Bytes: 1, Cycles: 8, Category: ALU16},
	{OpCode: 0x1a, Mnemonic: "LD A,(DE)", Bytes: 1, Cycles: 8, Category: Load},
	{OpCode: 0x1b, Mnemonic: "DEC DE", Bytes: 1, Cycles: 8, Category: ALU16},
	{OpCode: 0x1c, Mnemonic: "INC E", Bytes: 1, Cycles: 4, Category: ALU},
	{OpCode: 0x1d, Mnemonic: "DEC E", Bytes: 1, Cycles: 4, Category: ALU},
	{OpCode: 0x1e, Mnemonic: "LD E,d8", Bytes: 2, Cycles: 8, Category: Load},
	{OpCode: 0x1f, Mnemonic: "RRA", Bytes: 1, Cycles: 4, Category: ALU},
	{OpCode: 0x20, Mnemonic: "JR NZ,r8", Bytes: 2, Cycles: 8, TakenCycles: 12, Category: Flow},
	{OpCode: 0x21, Mnemonic: "LD HL,d16", Bytes: 3, Cycles: 12, Category: Load16},
	{OpCode: 0x22, Mnemonic: "LD (HL+),A", Bytes: 1, Cycles: 8, Category: Load},
	{OpCode: 0x23, Mnemonic: "INC HL", Bytes: 1, Cycles: 8, Category: ALU16},
	{OpCode: 0x24, Mnemonic: "INC H", Bytes: 1, Cycles: 4, Category: ALU},
	{OpCode: 0x25, Mnemonic: "DEC H", Bytes: 1, Cycles: 4, Category: ALU},
	{OpCode: 0x26, Mnemonic: "LD H,d8", Bytes: 2, Cycles: 8, Category: Load},
	{OpCode: 0x27, Mnemonic: "DAA", Bytes: 1, Cycles: 4, Category: ALU},
	{OpCode: 0x28, Mnemonic: "JR Z,r8", Bytes: 2, Cycles: 8, TakenCycles: 12, Category: Flow},
	{OpCode: 0x29, Mnemonic: "ADD HL,HL", Bytes: 1, Cycles: 8, Category: ALU16},
	{OpCode: 0x2a, Mnemonic: "LD A,(HL+)", Bytes: 1, Cycles: 8, Category: Load},
	{OpCode: 0x2b, Mnemonic: "DEC HL", Bytes: 1, Cycles: 8, Category: ALU16},
	{OpCode: 0x2c, Mnemonic: "INC L", Bytes: 1, Cycles: 4, Category: ALU},
	{OpCode: 0x2d, Mnemonic: "DEC L", Bytes: 1, Cycles: 4, Category: ALU},
	{OpCode: 0x2e, Mnemonic: "LD L,d8", Bytes: 2, Cycles: 8, Category: Load},
	{OpCode: 0x2f, Mnemonic: "CPL", Bytes: 1, Cycles: 4, Category: ALU},
	{OpCode: 0x30, Mnemonic: "JR NC,r8", Bytes: 2, Cycles: 8, TakenCycles: 12, Category: Flow},
	{OpCode: 0x31, Mnemonic: "LD SP,d16", Bytes: 3, Cycles: 12, Category: Load16},
	{OpCode: 0x32, Mnemonic: "LD (HL-),A", Bytes: 1, Cycles: 8, Category: Load},
	{OpCode: 0x33, Mnemonic: "INC SP", Bytes: 1, Cycles: 8, Category: ALU16},
	{OpCode: 0x34, Mnemonic: "INC (HL)", Bytes: 1, Cycles: 12, Category: ALU},
	{OpCode: 0x35, Mnemonic: "DEC (HL)", Bytes: 1, Cycles: 12, Category: ALU},
	{OpCode: 0x36, Mnemonic: "LD (HL),d8", Bytes: 2, Cycles: 12, Category: Load},
	{OpCode: 0x37, Mnemonic: "SCF", Bytes: 1, Cycles: 4, Category: ALU},
	{OpCode: 0x38, Mnemonic: "JR C,r8", Bytes: 2, Cycles: 8, TakenCycles: 12, Category: Flow},
	{OpCode: 0x39, Mnemonic: "ADD HL,SP", Bytes: 1, Cycles: 8, Category: ALU16},
	{OpCode: 0x3a, Mnemonic: "LD A,(HL-)", Bytes: 1, Cycles: 8, Category: Load},
	{OpCode: 0x3b, Mnemonic: "DEC SP", Bytes: 1, Cycles: 8, Category: ALU16},
	{OpCode: 0x3c, Mnemonic: "INC A", Bytes: 1, Cycles: 4, Category: ALU},
	{OpCode: 0x3d, Mnemonic: "DEC A", Bytes: 1, Cycles: 4, Category: ALU},
	{OpCode: 0x3e, Mnemonic: "LD A,d8", Bytes: 2, Cycles: 8, Category: Load},
	{OpCode: 0x3f, Mnemonic: "CCF", Bytes: 1, Cycles: 4, Category: ALU},
	{OpCode: 0x40, Mnemonic: "LD B,B", Bytes: 1, Cycles: 4, Category: Load},
	{OpCode: 0x41, Mnemonic: "LD B,C", Bytes: 1, Cycles: 4, Category: Load},
	{OpCode: 0x42, Mnemonic: "LD B,D", Bytes: 1, Cycles: 4, Category: Load},
	{OpCode: 0x43, Mnemonic: "LD B,E", Bytes: 1, Cycles: 4, Category: Load},
	{OpCode: 0x44, Mnemonic: "LD B,H", Bytes: 1, Cycles: 4, Category: Load},
	{OpCode: 0x45, Mnemonic: "LD B,L", Bytes: 1, Cycles: 4, Category: Load},
	{OpCode: 0x46, Mnemonic: "LD B,(HL)", Bytes: 1, Cycles: 8, Category: Load},
	{OpCode: 0x47, Mnemonic: "LD B,A", Bytes: 1, Cycles: 4, Category: Load},
	{OpCode: 0x48, Mnemonic: "LD C,B", Bytes: 1, Cycles: 4, Category: Load},
	{OpCode: 0x49, Mnemonic: "LD C,C", Bytes: 1, Cycles: 4, Category: Load},
	{OpCode: 0x4a, Mnemonic: "LD C,D", Bytes: 1, Cycles: 4, Category: Load},
	{OpCode: 0x4b, Mnemonic: "LD C,E", Bytes: 1, Cycles: 4, Category: Load},
	{OpCode: 0x4c, Mnemonic: "LD C,H", Bytes: 1, Cycles: 4, Category: Load},
	{OpCode: 0x4d, Mnemonic: "LD C,L", Bytes: 1, Cycles: 4, Category: Load},
	{OpCode: 0x4e, Mnemonic: "LD C,(HL)", Bytes: 1, Cycles: 8, Category: Load},
	{OpCode: 0x4f, Mnemonic: "LD C,A", Bytes: 1, Cycles: 4, Category: Load},
	{OpCode: 0x50, Mnemonic: "LD D,B", Bytes: 1, Cycles: 4, Category: Load},
	{OpCode: 0x51, Mnemonic: "LD D,C", Bytes: 1, Cycles: 4, Category: Load},
	{OpCode: 0x52, Mnemonic: "LD D,D", Bytes: 1, Cycles: 4, Category: Load},
	{OpCode: 0x53, Mnemonic: "LD D,E", Bytes: 1, Cycles: 4, Category: Load},
	{OpCode: 0x54, Mnemonic: "LD D,H", Bytes: 1, Cycles: 4, Category: Load},
	{OpCode: 0x55, Mnemonic: "LD D,L", Bytes: 1, Cycles: 4, Category: Load},
	{OpCode: 0x56, Mnemonic: "LD D,(HL)", Bytes: 1, Cycles: 8, Category: Load},
	{OpCode: 0x57, Mnemonic: "LD D,A", Bytes: 1, Cycles: 4, Category: Load},
	{OpCode: 0x58, Mnemonic: "LD E,B", Bytes: 1, Cycles: 4, Category: Load},
	{OpCode: 0x59, Mnemonic: "LD E,C", Bytes: 1, Cycles: 4, Category: Load},
	{OpCode: 0x5a, Mnemonic: "LD E,D", Bytes: 1, Cycles: 4, Category: Load},
	{OpCode: 0x5b, Mnemonic: "LD E,E", Bytes: 1, Cycles: 4, Category: Load},
	{OpCode: 0x5c, Mnemonic: "LD E,H", Bytes: 1, Cycles: 4, Category: Load},
	{OpCode: 0x5d, Mnemonic: "LD E,L", Bytes: 1, Cycles: 4, Category: Load},
	{OpCode: 0x5e, Mnemonic: "LD E,(HL)", Bytes: 1, Cycles: 8, Category: Load},
	{OpCode: 0x5f, Mnemonic: "LD E,A", Bytes: 1, Cycles: 4, Category: Load},
	{OpCode: 0x60, Mnemonic: "LD H,B", Bytes: 1, Cycles: 4, Category: Load},
	{OpCode: 0x61, Mnemonic: "LD H,C", Bytes: 1, Cycles: 4, Category: Load},
	{OpCode: 0x62, Mnemonic: "LD H,D", Bytes: 1, Cycles: 4, Category: Load},
	{OpCode: 0x63, Mnemonic: "LD H,E", Bytes: 1, Cycles: 4, Category: Load},
	{OpCode: 0x64, Mnemonic: "LD H,H", Bytes: 1, Cycles: 4, Category: Load},
	{OpCode: 0x65, Mnemonic: "LD H,L", Bytes: 1, Cycles: 4, Category: Load},
	{OpCode: 0x66, Mnemonic: "LD H,(HL)", Bytes: 1, Cycles: 8, Category: Load},
	{OpCode: 0x67, Mnemonic: "LD H,A", Bytes: 1, Cycles: 4, Category: Load},
	{OpCode: 0x68, Mnemonic: "LD L,B", Bytes: 1, Cycles: 4, Category: Load},
	{OpCode: 0x69, Mnemonic: "LD L,C", Bytes: 1, Cycles: 4, Category: Load},
	{OpCode: 0x6a, Mnemonic: "LD L,D", Bytes: 1, Cycles: 4, Category: Load},
	{OpCode: 0x6b, Mnemonic: "LD L,E", Bytes: 1, Cycles: 4, Category: Load},
	{OpCode: 0x6c, Mnemonic: "LD L,H", Bytes: 1, Cycles: 4, Category: Load},
	{OpCode: 0x6d, Mnemonic: "LD L,L", Bytes: 1, Cycles: 4, Category: Load},
	{OpCode: 0x6e, Mnemonic: "LD L,(HL)", Bytes: 1, Cycles: 8, Category: Load},
	{OpCode: 0x6f, Mnemonic: "LD L,A", Bytes: 1, Cycles: 4, Category: Load},
	{OpCode: 0x70, Mnemonic: "LD (HL),B", Bytes: 1, Cycles: 8, Category: Load},
	{OpCode: 0x71, Mnemonic: "LD (HL),C", Bytes: 1, Cycles: 8, Category: Load},
	{OpCode: 0x72, Mnemonic: "LD (HL),D", Bytes: 1, Cycles: 8, Category: Load},
	{OpCode: 0x73, Mnemonic: "LD (HL),E", Bytes: 1, Cycles: 8, Category: Load},
	{OpCode: 0x74, Mnemonic: "LD (HL),H", Bytes: 1, Cycles: 8, Category: Load},
	{OpCode: 0x75, Mnemonic: "LD (HL),L", Bytes: 1, Cycles: 8, Category: Load},
	{OpCode: 0x76, Mnemonic: "HALT", Bytes: 1, Cycles: 4, Category: Control},
	{OpCode: 0x77, Mnemonic: "LD (HL),A", Bytes: 1, Cycles: 8, Category: Load},
	{OpCode: 0x78, Mnemonic: "LD A,B", Bytes: 1, Cycles: 4, Category: Load},
	{OpCode: 0x79, Mnemonic: "LD A,C", Bytes: 1, Cycles: 4, Category: Load},
	{OpCode: 0x7a, Mnemonic: "LD A,D", Bytes: 1, Cycles: 4, Category: Load},
	{OpCode: 0x7b, Mnemonic: "LD A,E", Bytes: 1, Cycles: 4, Category: Load},
	{OpCode: 0x7c, Mnemonic: "LD A,H", Bytes: 1, Cycles: 4, Category: Load},
	{OpCode: 0x7d, Mnemonic: "LD A,L", Bytes: 1, Cycles: 4, Category: Load},
	{OpCode: 0x7e, Mnemonic: "LD A,(HL)", Bytes: 1, Cycles: 8, Category: Load},
	{OpCode: 0x7f, Mnemonic: "LD A,A", Bytes: 1, Cycles: 4, Category: Load},
	{OpCode: 0x80, Mnemonic: "ADD A,B", Bytes: 1, Cycles: 4, Category: ALU},
	{OpCode: 0x81, Mnemonic: "ADD A,C", Bytes: 1, Cycles: 4, Category: ALU},
	{OpCode: 0x82, Mnemonic: "ADD A,D", Bytes: 1, Cycles: 4, Category: ALU},
	{OpCode: 0x83, Mnemonic: "ADD A,E", Bytes: 1, Cycles: 4, Category: ALU},
	{OpCode: 0x84, Mnemonic: "ADD A,H", Bytes: 1, Cycles: 4, Category: ALU},
	{OpCode: 0x85, Mnemonic: "ADD A,L", Bytes: 1, Cycles: 4, Category: ALU},
	{OpCode: 0x86, Mnemonic: "ADD A,(HL)", Bytes: 1, Cycles: 8, Category: ALU},
	{OpCode: 0x87, Mnemonic: "ADD A,A", Bytes: 1, Cycles: 4, Category: ALU},
	{OpCode: 0x88, Mnemonic: "ADC A,B", Bytes: 1, Cycles: 4, Category: ALU},
	{OpCode: 0x89, Mnemonic: "ADC A,C", Bytes: 1, Cycles: 4, Category: ALU},
	{OpCode: 0x8a, Mnemonic: "ADC A,D", Bytes: 1, Cycles: 4, Category: ALU},
	{OpCode: 0x8b, Mnemonic: "ADC A,E", Bytes: 1, Cycles: 4, Category: ALU},
	{OpCode: 0x8c, Mnemonic: "ADC A,H", Bytes: 1, Cycles: 4, Category: ALU},
	{OpCode: 0x8d, Mnemonic: "ADC A,L", Bytes: 1, Cycles: 4, Category: ALU},
	{OpCode: 0x8e, Mnemonic: "ADC A,(HL)", Bytes: 1, Cycles: 8, Category: ALU},
	{OpCode: 0x8f, Mnemonic: "ADC A,A", Bytes: 1, Cycles: 4, Category: ALU},
	{OpCode: 0x90, Mnemonic: "SUB B", Bytes: 1, Cycles: 4, Category: ALU},
	{OpCode: 0x91, Mnemonic: "SUB C", Bytes: 1, Cycles: 4, Category: ALU},
	{OpCode: 0x92, Mnemonic: "SUB D", Bytes: 1, Cycles: 4, Category: ALU},
	{OpCode: 0x93, Mnemonic: "SUB E", Bytes: 1, Cycles: 4, Category: ALU},
	{OpCode: 0x94, Mnemonic: "SUB H", Bytes: 1, Cycles: 4, Category: ALU},
	{OpCode: 0x95, Mnemonic: "SUB L", Bytes: 1, Cycles: 4, Category: ALU},
	{OpCode: 0x96, Mnemonic: "SUB (HL)", Bytes: 1, Cycles: 8, Category: ALU},
	{OpCode: 0x97, Mnemonic: "SUB A", Bytes: 1, Cycles: 4, Category: ALU},
	{OpCode: 0x98, Mnemonic: "SBC A,B", Bytes: 1, Cycles: 4, Category: ALU},
	{OpCode: 0x99, Mnemonic: "SBC A,C", Bytes: 1, Cycles: 4, Category: ALU},
	{OpCode: 0x9a, Mnemonic: "SBC A,D", Bytes: 1, Cycles: 4, Category: ALU},
	{OpCode: 0x9b, Mnemonic: "SBC A,E", Bytes: 1, Cycles: 4, Category: ALU},
	{OpCode: 0x9c, Mnemonic: "SBC A,H", Bytes: 1, Cycles: 4, Category: ALU},
	{OpCode: 0x9d, Mnemonic: "SBC A,L", Bytes: 1, Cycles: 4, Category: ALU},
	{OpCode: 0x9e, Mnemonic: "SBC A,(HL)", Bytes: 1, Cycles: 8, Category: ALU},
	{OpCode: 0x9f, Mnemonic: "SBC A,A", Bytes: 1, Cycles: 4, Category: ALU},
	{OpCode: 0xa0, Mnemonic: "AND B", Bytes: 1, Cycles: 4, Category: ALU},
	{OpCode: 0xa1, Mnemonic: "AND C", Bytes: 1, Cycles: 4, Category: ALU},
	{OpCode: 0xa2, Mnemonic: "AND D", Bytes: 1, Cycles: 4, Category: ALU},
	{OpCode: 0xa3, Mnemonic: "AND E", Bytes: 1, Cycles: 4, Category: ALU},
	{OpCode: 0xa4, Mnemonic: "AND H", Bytes: 1, Cycles: 4, Category: ALU},
	{OpCode: 0xa5, Mnemonic: "AND L", Bytes: 1, Cycles: 4, Category: ALU},
	{OpCode: 0xa6, Mnemonic: "AND (HL)", Bytes: 1, Cycles: 8, Category: ALU},
	{OpCode: 0xa7, Mnemonic: "AND A", Bytes: 1, Cycles: 4, Category: ALU},
	{OpCode: 0xa8, Mnemonic: "XOR B", Bytes: 1, Cycles: 4, Category: ALU},
	{OpCode: 0xa9, Mnemonic: "XOR C", Bytes: 1, Cycles: 4, Category: ALU},
	{OpCode: 0xaa, Mnemonic: "XOR D", Bytes: 1, Cycles: 4, Category: ALU},
	{OpCode: 0xab, Mnemonic: "XOR E", Bytes: 1, Cycles: 4, Category: ALU},
	{OpCode: 0xac, Mnemonic: "XOR H", Bytes: 1, Cycles: 4, Category: ALU},
	{OpCode: 0xad, Mnemonic: "XOR L", Bytes: 1, Cycles: 4, Category: ALU},
	{OpCode: 0xae, Mnemonic: "XOR (HL)", Bytes: 1, Cycles: 8, Category: ALU},
	{OpCode: 0xaf, Mnemonic: "XOR A", Bytes: 1, Cycles: 4, Category: ALU},
	{OpCode: 0xb0, Mnemonic: "OR B", Bytes: 1, Cycles: 4, Category: ALU},
	{OpCode: 0xb1, Mnemonic: "OR C", Bytes: 1, Cycles: 4, Category: ALU},
	{OpCode: 0xb2, Mnemonic: "OR D", Bytes: 1, Cycles: 4, Category: ALU},
	{OpCode: 0xb3, Mnemonic: "OR E", Bytes: 1, Cycles: 4, Category: ALU},
	{OpCode: 0xb4, Mnemonic: "OR H", Bytes: 1, Cycles: 4, Category: ALU},
	{OpCode: 0xb5, Mnemonic: "OR L", Bytes: 1, Cycles: 4, Category: ALU},
	{OpCode: 0xb6, Mnemonic: "OR (HL)", Bytes: 1, Cycles: 8, Category: ALU},
	{OpCode: 0xb7, Mnemonic: "OR A", Bytes: 1, Cycles: 4, Category: ALU},
	{OpCode: 0xb8, Mnemonic: "CP B", Bytes: 1, Cycles: 4, Category: ALU},
	{OpCode: 0xb9, Mnemonic: "CP C", Bytes: 1, Cycles: 4, Category: ALU},
	{OpCode: 0xba, Mnemonic: "CP D", Bytes: 1, Cycles: 4, Category: ALU},
	{OpCode: 0xbb, Mnemonic: "CP E", Bytes: 1, Cycles: 4, Category: ALU},
	{OpCode: 0xbc, Mnemonic: "CP H", Bytes: 1, Cycles: 4, Category: ALU},
	{OpCode: 0xbd, Mnemonic: "CP L", Bytes: 1, Cycles: 4, Category: ALU},
	{OpCode: 0xbe, Mnemonic: "CP (HL)", Bytes: 1, Cycles: 8, Category: ALU},
	{OpCode: 0xbf, Mnemonic: "CP A", Bytes: 1, Cycles: 4, Category: ALU},
	{OpCode: 0xc0, Mnemonic: "RET NZ", Bytes: 1, Cycles: 8, TakenCycles: 20, Category: Subroutine},
	{OpCode: 0xc1, Mnemonic: "POP BC", Bytes: 1, Cycles: 12, Category: Stack},
	{OpCode: 0xc2, Mnemonic: "JP NZ,a16", Bytes: 3, Cycles: 12, TakenCycles: 16, Category: Flow},
	{OpCode: 0xc3, Mnemonic: "JP a16", Bytes: 3, Cycles: 16, Category: Flow},
	{OpCode: 0xc4, Mnemonic: "CALL NZ,a16", Bytes: 3, Cycles: 12, TakenCycles: 24, Category: Subroutine},
	{OpCode: 0xc5, Mnemonic: "PUSH BC", Bytes: 1, Cycles: 16, Category: Stack},
	{OpCode: 0xc6, Mnemonic: "ADD A,d8", Bytes: 2, Cycles: 8, Category: ALU},
	{OpCode: 0xc7, Mnemonic: "RST 00H", Bytes: 1, Cycles: 16, Category: Subroutine},
	{OpCode: 0xc8, Mnemonic: "RET Z", Bytes: 1, Cycles: 8, TakenCycles: 20, Category: Subroutine},
	{OpCode: 0xc9, Mnemonic: "RET", Bytes: 1, Cycles: 16, Category: Subroutine},
	{OpCode: 0xca, Mnemonic: "JP Z,a16", Bytes: 3, Cycles: 12, TakenCycles: 16, Category: Flow},
	{OpCode: 0xcb, Mnemonic: "PREFIX CB", Bytes: 1, Cycles: 4, Category: Prefix},
	{OpCode: 0xcc, Mnemonic: "CALL Z,a16", Bytes: 3, Cycles: 12, TakenCycles: 24, Category: Subroutine},
	{OpCode: 0xcd, Mnemonic: "CALL a16", Bytes: 3, Cycles: 24, Category: Subroutine},
	{OpCode: 0xce, Mnemonic: "ADC A,d8", Bytes: 2, Cycles: 8, Category: ALU},
	{OpCode: 0xcf, Mnemonic: "RST 08H", Bytes: 1, Cycles: 16, Category: Subroutine},
	{OpCode: 0xd0, Mnemonic: "RET NC", Bytes: 1, Cycles: 8, TakenCycles: 20, Category: Subroutine},
	{OpCode: 0xd1, Mnemonic: "POP DE", Bytes: 1, Cycles: 12, Category: Stack},
	{OpCode: 0xd2, Mnemonic: "JP NC,a16", Bytes: 3, Cycles: 12, TakenCycles: 16, Category: Flow},
	{OpCode: 0xd3, Mnemonic: "??", Bytes: 1, Cycles: 4, Category: Control, Undefined: true},
	{OpCode: 0xd4, Mnemonic: "CALL NC,a16", Bytes: 3, Cycles: 12, TakenCycles: 24, Category: Subroutine},
	{OpCode: 0xd5, Mnemonic: "PUSH DE", Bytes: 1, Cycles: 16, Category: Stack},
	{OpCode: 0xd6, Mnemonic: "SUB d8", Bytes: 2, Cycles: 8, Category: ALU},
	{OpCode: 0xd7, Mnemonic: "RST 10H", Bytes: 1, Cycles: 16, Category: Subroutine},
	{OpCode: 0xd8, Mnemonic: "RET C", Bytes: 1, Cycles: 8, TakenCycles: 20, Category: Subroutine},
	{OpCode: 0xd9, Mnemonic: "RETI", Bytes: 1, Cycles: 16, Category: Subroutine},
	{OpCode: 0xda, Mnemonic: "JP C,a16", Bytes: 3, Cycles: 12, TakenCycles: 16, Category: Flow},
	{OpCode: 0xdb, Mnemonic: "??", Bytes: 1, Cycles: 4, Category: Control, Undefined: true},
	{OpCode: 0xdc, Mnemonic: "CALL C,a16", Bytes: 3, Cycles: 12, TakenCycles: 24, Category: Subroutine},
	{OpCode: 0xdd, Mnemonic: "??", Bytes: 1, Cycles: 4, Category: Control, Undefined: true},
	{OpCode: 0xde, Mnemonic: "SBC A,d8", Bytes: 2, Cycles: 8, Category: ALU},
	{OpCode: 0xdf, Mnemonic: "RST 18H", Bytes: 1, Cycles: 16, Category: Subroutine},
	{OpCode: 0xe0, Mnemonic: "LDH (a8),A", Bytes: 2, Cycles: 12, Category: Load},
	{OpCode: 0xe1, Mnemonic: "POP HL", Bytes: 1, Cycles: 12, Category: Stack},
	{OpCode: 0xe2, Mnemonic: "LD (C),A", Bytes: 1, Cycles: 8, Category: Load},
	{OpCode: 0xe3, Mnemonic: "??", Bytes: 1, Cycles: 4, Category: Control, Undefined: true},
	{OpCode: 0xe4, Mnemonic: "??", Bytes: 1, Cycles: 4, Category: Control, Undefined: true},
	{OpCode: 0xe5, Mnemonic: "PUSH HL", Bytes: 1, Cycles: 16, Category: Stack},
	{OpCode: 0xe6, Mnemonic: "AND d8", Bytes: 2, Cycles: 8, Category: ALU},
	{OpCode: 0xe7, Mnemonic: "RST 20H", Bytes: 1, Cycles: 16, Category: Subroutine},
	{OpCode: 0xe8, Mnemonic: "ADD SP,r8", Bytes: 2, Cycles: 16, Category: ALU16},
	{OpCode: 0xe9, Mnemonic: "JP (HL)", Bytes: 1, Cycles: 4, Category: Flow},
	{OpCode: 0xea, Mnemonic: "LD (a16),A", Bytes: 3, Cycles: 16, Category: Load},
	{OpCode: 0xeb, Mnemonic: "??", Bytes: 1, Cycles: 4, Category: Control, Undefined: true},
	{OpCode: 0xec, Mnemonic: "??", Bytes: 1, Cycles: 4, Category: Control, Undefined: true},
	{OpCode: 0xed, Mnemonic: "??", Bytes: 1, Cycles: 4, Category: Control, Undefined: true},
	{OpCode: 0xee, Mnemonic: "XOR d8", Bytes: 2, Cycles: 8, Category: ALU},
	{OpCode: 0xef, Mnemonic: "RST 28H", Bytes: 1, Cycles: 16, Category: Subroutine},
	{OpCode: 0xf0, Mnemonic: "LDH A,(a8)", Bytes: 2, Cycles: 12, Category: Load},
	{OpCode: 0xf1, Mnemonic: "POP AF", Bytes: 1, Cycles: 12, Category: Stack},
	{OpCode: 0xf2, Mnemonic: "LD A,(C)", Bytes: 1, Cycles: 8, Category: Load},
	{OpCode: 0xf3, Mnemonic: "DI", Bytes: 1, Cycles: 4, Category: Control},
	{OpCode: 0xf4, Mnemonic: "??", Bytes: 1, Cycles: 4, Category: Control, Undefined: true},
	{OpCode: 0xf5, Mnemonic: "PUSH AF", Bytes: 1, Cycles: 16, Category: Stack},
	{OpCode: 0xf6, Mnemonic: "OR d8", Bytes: 2, Cycles: 8, Category: ALU},
	{OpCode: 0xf7, Mnemonic: "RST 30H", Bytes: 1, Cycles: 16, Category: Subroutine},
	{OpCode: 0xf8, Mnemonic: "LD HL,SP+r8", Bytes: 2, Cycles: 12, Category: Load16},
	{OpCode: 0xf9, Mnemonic: "LD SP,HL", Bytes: 1, Cycles: 8, Category: Load16},
	{OpCode: 0xfa, Mnemonic: "LD A,(a16)", Bytes: 3, Cycles: 16, Category: Load},
	{OpCode: 0xfb, Mnemonic: "EI", Bytes: 1, Cycles: 4, Category: Control},
	{OpCode: 0xfc, Mnemonic: "??", Bytes: 1, Cycles: 4, Category: Control, Undefined: true},
	{OpCode: 0xfd, Mnemonic: "??", Bytes: 1, Cycles: 4, Category: Control, Undefined: true},
	{OpCode: 0xfe, Mnemonic: "CP d8", Bytes: 2, Cycles: 8, Category: ALU},
	{OpCode: 0xff, Mnemonic: "RST 38H", Bytes: 1, Cycles: 16, Category: Subroutine},
}

// instructions following the 0xcb prefix byte. the cycles include the
// fetching of the prefix byte.
var prefixedDefinitions = [256]Definition{
	{OpCode: 0x00, Prefixed: true, Mnemonic: "RLC B", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x01, Prefixed: true, Mnemonic: "RLC C", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x02, Prefixed: true, Mnemonic: "RLC D", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x03, Prefixed: true, Mnemonic: "RLC E", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x04, Prefixed: true, Mnemonic: "RLC H", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x05, Prefixed: true, Mnemonic: "RLC L", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x06, Prefixed: true, Mnemonic: "RLC (HL)", Bytes: 2, Cycles: 16, Category: Bit},
	{OpCode: 0x07, Prefixed: true, Mnemonic: "RLC A", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x08, Prefixed: true, Mnemonic: "RRC B", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x09, Prefixed: true, Mnemonic: "RRC C", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x0a, Prefixed: true, Mnemonic: "RRC D", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x0b, Prefixed: true, Mnemonic: "RRC E", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x0c, Prefixed: true, Mnemonic: "RRC H", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x0d, Prefixed: true, Mnemonic: "RRC L", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x0e, Prefixed: true, Mnemonic: "RRC (HL)", Bytes: 2, Cycles: 16, Category: Bit},
	{OpCode: 0x0f, Prefixed: true, Mnemonic: "RRC A", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x10, Prefixed: true, Mnemonic: "RL B", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x11, Prefixed: true, Mnemonic: "RL C", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x12, Prefixed: true, Mnemonic: "RL D", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x13, Prefixed: true, Mnemonic: "RL E", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x14, Prefixed: true, Mnemonic: "RL H", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x15, Prefixed: true, Mnemonic: "RL L", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x16, Prefixed: true, Mnemonic: "RL (HL)", Bytes: 2, Cycles: 16, Category: Bit},
	{OpCode: 0x17, Prefixed: true, Mnemonic: "RL A", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x18, Prefixed: true, Mnemonic: "RR B", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x19, Prefixed: true, Mnemonic: "RR C", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x1a, Prefixed: true, Mnemonic: "RR D", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x1b, Prefixed: true, Mnemonic: "RR E", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x1c, Prefixed: true, Mnemonic: "RR H", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x1d, Prefixed: true, Mnemonic: "RR L", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x1e, Prefixed: true, Mnemonic: "RR (HL)", Bytes: 2, Cycles: 16, Category: Bit},
	{OpCode: 0x1f, Prefixed: true, Mnemonic: "RR A", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x20, Prefixed: true, Mnemonic: "SLA B", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x21, Prefixed: true, Mnemonic: "SLA C", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x22, Prefixed: true, Mnemonic: "SLA D", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x23, Prefixed: true, Mnemonic: "SLA E", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x24, Prefixed: true, Mnemonic: "SLA H", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x25, Prefixed: true, Mnemonic: "SLA L", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x26, Prefixed: true, Mnemonic: "SLA (HL)", Bytes: 2, Cycles: 16, Category: Bit},
	{OpCode: 0x27, Prefixed: true, Mnemonic: "SLA A", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x28, Prefixed: true, Mnemonic: "SRA B", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x29, Prefixed: true, Mnemonic: "SRA C", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x2a, Prefixed: true, Mnemonic: "SRA D", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x2b, Prefixed: true, Mnemonic: "SRA E", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x2c, Prefixed: true, Mnemonic: "SRA H", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x2d, Prefixed: true, Mnemonic: "SRA L", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x2e, Prefixed: true, Mnemonic: "SRA (HL)", Bytes: 2, Cycles: 16, Category: Bit},
	{OpCode: 0x2f, Prefixed: true, Mnemonic: "SRA A", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x30, Prefixed: true, Mnemonic: "SWAP B", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x31, Prefixed: true, Mnemonic: "SWAP C", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x32, Prefixed: true, Mnemonic: "SWAP D", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x33, Prefixed: true, Mnemonic: "SWAP E", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x34, Prefixed: true, Mnemonic: "SWAP H", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x35, Prefixed: true, Mnemonic: "SWAP L", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x36, Prefixed: true, Mnemonic: "SWAP (HL)", Bytes: 2, Cycles: 16, Category: Bit},
	{OpCode: 0x37, Prefixed: true, Mnemonic: "SWAP A", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x38, Prefixed: true, Mnemonic: "SRL B", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x39, Prefixed: true, Mnemonic: "SRL C", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x3a, Prefixed: true, Mnemonic: "SRL D", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x3b, Prefixed: true, Mnemonic: "SRL E", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x3c, Prefixed: true, Mnemonic: "SRL H", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x3d, Prefixed: true, Mnemonic: "SRL L", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x3e, Prefixed: true, Mnemonic: "SRL (HL)", Bytes: 2, Cycles: 16, Category: Bit},
	{OpCode: 0x3f, Prefixed: true, Mnemonic: "SRL A", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x40, Prefixed: true, Mnemonic: "BIT 0,B", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x41, Prefixed: true, Mnemonic: "BIT 0,C", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x42, Prefixed: true, Mnemonic: "BIT 0,D", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x43, Prefixed: true, Mnemonic: "BIT 0,E", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x44, Prefixed: true, Mnemonic: "BIT 0,H", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x45, Prefixed: true, Mnemonic: "BIT 0,L", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x46, Prefixed: true, Mnemonic: "BIT 0,(HL)", Bytes: 2, Cycles: 12, Category: Bit},
	{OpCode: 0x47, Prefixed: true, Mnemonic: "BIT 0,A", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x48, Prefixed: true, Mnemonic: "BIT 1,B", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x49, Prefixed: true, Mnemonic: "BIT 1,C", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x4a, Prefixed: true, Mnemonic: "BIT 1,D", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x4b, Prefixed: true, Mnemonic: "BIT 1,E", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x4c, Prefixed: true, Mnemonic: "BIT 1,H", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x4d, Prefixed: true, Mnemonic: "BIT 1,L", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x4e, Prefixed: true, Mnemonic: "BIT 1,(HL)", Bytes: 2, Cycles: 12, Category: Bit},
	{OpCode: 0x4f, Prefixed: true, Mnemonic: "BIT 1,A", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x50, Prefixed: true, Mnemonic: "BIT 2,B", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x51, Prefixed: true, Mnemonic: "BIT 2,C", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x52, Prefixed: true, Mnemonic: "BIT 2,D", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x53, Prefixed: true, Mnemonic: "BIT 2,E", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x54, Prefixed: true, Mnemonic: "BIT 2,H", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x55, Prefixed: true, Mnemonic: "BIT 2,L", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x56, Prefixed: true, Mnemonic: "BIT 2,(HL)", Bytes: 2, Cycles: 12, Category: Bit},
	{OpCode: 0x57, Prefixed: true, Mnemonic: "BIT 2,A", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x58, Prefixed: true, Mnemonic: "BIT 3,B", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x59, Prefixed: true, Mnemonic: "BIT 3,C", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x5a, Prefixed: true, Mnemonic: "BIT 3,D", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x5b, Prefixed: true, Mnemonic: "BIT 3,E", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x5c, Prefixed: true, Mnemonic: "BIT 3,H", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x5d, Prefixed: true, Mnemonic: "BIT 3,L", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x5e, Prefixed: true, Mnemonic: "BIT 3,(HL)", Bytes: 2, Cycles: 12, Category: Bit},
	{OpCode: 0x5f, Prefixed: true, Mnemonic: "BIT 3,A", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x60, Prefixed: true, Mnemonic: "BIT 4,B", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x61, Prefixed: true, Mnemonic: "BIT 4,C", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x62, Prefixed: true, Mnemonic: "BIT 4,D", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x63, Prefixed: true, Mnemonic: "BIT 4,E", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x64, Prefixed: true, Mnemonic: "BIT 4,H", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x65, Prefixed: true, Mnemonic: "BIT 4,L", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x66, Prefixed: true, Mnemonic: "BIT 4,(HL)", Bytes: 2, Cycles: 12, Category: Bit},
	{OpCode: 0x67, Prefixed: true, Mnemonic: "BIT 4,A", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x68, Prefixed: true, Mnemonic: "BIT 5,B", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x69, Prefixed: true, Mnemonic: "BIT 5,C", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x6a, Prefixed: true, Mnemonic: "BIT 5,D", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x6b, Prefixed: true, Mnemonic: "BIT 5,E", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x6c, Prefixed: true, Mnemonic: "BIT 5,H", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x6d, Prefixed: true, Mnemonic: "BIT 5,L", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x6e, Prefixed: true, Mnemonic: "BIT 5,(HL)", Bytes: 2, Cycles: 12, Category: Bit},
	{OpCode: 0x6f, Prefixed: true, Mnemonic: "BIT 5,A", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x70, Prefixed: true, Mnemonic: "BIT 6,B", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x71, Prefixed: true, Mnemonic: "BIT 6,C", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x72, Prefixed: true, Mnemonic: "BIT 6,D", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x73, Prefixed: true, Mnemonic: "BIT 6,E", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x74, Prefixed: true, Mnemonic: "BIT 6,H", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x75, Prefixed: true, Mnemonic: "BIT 6,L", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x76, Prefixed: true, Mnemonic: "BIT 6,(HL)", Bytes: 2, Cycles: 12, Category: Bit},
	{OpCode: 0x77, Prefixed: true, Mnemonic: "BIT 6,A", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x78, Prefixed: true, Mnemonic: "BIT 7,B", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x79, Prefixed: true, Mnemonic: "BIT 7,C", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x7a, Prefixed: true, Mnemonic: "BIT 7,D", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x7b, Prefixed: true, Mnemonic: "BIT 7,E", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x7c, Prefixed: true, Mnemonic: "BIT 7,H", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x7d, Prefixed: true, Mnemonic: "BIT 7,L", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x7e, Prefixed: true, Mnemonic: "BIT 7,(HL)", Bytes: 2, Cycles: 12, Category: Bit},
	{OpCode: 0x7f, Prefixed: true, Mnemonic: "BIT 7,A", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x80, Prefixed: true, Mnemonic: "RES 0,B", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x81, Prefixed: true, Mnemonic: "RES 0,C", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x82, Prefixed: true, Mnemonic: "RES 0,D", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x83, Prefixed: true, Mnemonic: "RES 0,E", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x84, Prefixed: true, Mnemonic: "RES 0,H", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x85, Prefixed: true, Mnemonic: "RES 0,L", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x86, Prefixed: true, Mnemonic: "RES 0,(HL)", Bytes: 2, Cycles: 16, Category: Bit},
	{OpCode: 0x87, Prefixed: true, Mnemonic: "RES 0,A", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x88, Prefixed: true, Mnemonic: "RES 1,B", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x89, Prefixed: true, Mnemonic: "RES 1,C", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x8a, Prefixed: true, Mnemonic: "RES 1,D", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x8b, Prefixed: true, Mnemonic: "RES 1,E", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x8c, Prefixed: true, Mnemonic: "RES 1,H", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x8d, Prefixed: true, Mnemonic: "RES 1,L", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x8e, Prefixed: true, Mnemonic: "RES 1,(HL)", Bytes: 2, Cycles: 16, Category: Bit},
	{OpCode: 0x8f, Prefixed: true, Mnemonic: "RES 1,A", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x90, Prefixed: true, Mnemonic: "RES 2,B", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x91, Prefixed: true, Mnemonic: "RES 2,C", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x92, Prefixed: true, Mnemonic: "RES 2,D", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x93, Prefixed: true, Mnemonic: "RES 2,E", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x94, Prefixed: true, Mnemonic: "RES 2,H", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x95, Prefixed: true, Mnemonic: "RES 2,L", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x96, Prefixed: true, Mnemonic: "RES 2,(HL)", Bytes: 2, Cycles: 16, Category: Bit},
	{OpCode: 0x97, Prefixed: true, Mnemonic: "RES 2,A", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x98, Prefixed: true, Mnemonic: "RES 3,B", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x99, Prefixed: true, Mnemonic: "RES 3,C", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x9a, Prefixed: true, Mnemonic: "RES 3,D", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x9b, Prefixed: true, Mnemonic: "RES 3,E", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x9c, Prefixed: true, Mnemonic: "RES 3,H", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x9d, Prefixed: true, Mnemonic: "RES 3,L", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0x9e, Prefixed: true, Mnemonic: "RES 3,(HL)", Bytes: 2, Cycles: 16, Category: Bit},
	{OpCode: 0x9f, Prefixed: true, Mnemonic: "RES 3,A", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0xa0, Prefixed: true, Mnemonic: "RES 4,B", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0xa1, Prefixed: true, Mnemonic: "RES 4,C", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0xa2, Prefixed: true, Mnemonic: "RES 4,D", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0xa3, Prefixed: true, Mnemonic: "RES 4,E", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0xa4, Prefixed: true, Mnemonic: "RES 4,H", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0xa5, Prefixed: true, Mnemonic: "RES 4,L", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0xa6, Prefixed: true, Mnemonic: "RES 4,(HL)", Bytes: 2, Cycles: 16, Category: Bit},
	{OpCode: 0xa7, Prefixed: true, Mnemonic: "RES 4,A", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0xa8, Prefixed: true, Mnemonic: "RES 5,B", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0xa9, Prefixed: true, Mnemonic: "RES 5,C", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0xaa, Prefixed: true, Mnemonic: "RES 5,D", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0xab, Prefixed: true, Mnemonic: "RES 5,E", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0xac, Prefixed: true, Mnemonic: "RES 5,H", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0xad, Prefixed: true, Mnemonic: "RES 5,L", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0xae, Prefixed: true, Mnemonic: "RES 5,(HL)", Bytes: 2, Cycles: 16, Category: Bit},
	{OpCode: 0xaf, Prefixed: true, Mnemonic: "RES 5,A", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0xb0, Prefixed: true, Mnemonic: "RES 6,B", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0xb1, Prefixed: true, Mnemonic: "RES 6,C", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0xb2, Prefixed: true, Mnemonic: "RES 6,D", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0xb3, Prefixed: true, Mnemonic: "RES 6,E", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0xb4, Prefixed: true, Mnemonic: "RES 6,H", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0xb5, Prefixed: true, Mnemonic: "RES 6,L", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0xb6, Prefixed: true, Mnemonic: "RES 6,(HL)", Bytes: 2, Cycles: 16, Category: Bit},
	{OpCode: 0xb7, Prefixed: true, Mnemonic: "RES 6,A", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0xb8, Prefixed: true, Mnemonic: "RES 7,B", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0xb9, Prefixed: true, Mnemonic: "RES 7,C", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0xba, Prefixed: true, Mnemonic: "RES 7,D", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0xbb, Prefixed: true, Mnemonic: "RES 7,E", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0xbc, Prefixed: true, Mnemonic: "RES 7,H", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0xbd, Prefixed: true, Mnemonic: "RES 7,L", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0xbe, Prefixed: true, Mnemonic: "RES 7,(HL)", Bytes: 2, Cycles: 16, Category: Bit},
	{OpCode: 0xbf, Prefixed: true, Mnemonic: "RES 7,A", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0xc0, Prefixed: true, Mnemonic: "SET 0,B", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0xc1, Prefixed: true, Mnemonic: "SET 0,C", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0xc2, Prefixed: true, Mnemonic: "SET 0,D", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0xc3, Prefixed: true, Mnemonic: "SET 0,E", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0xc4, Prefixed: true, Mnemonic: "SET 0,H", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0xc5, Prefixed: true, Mnemonic: "SET 0,L", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0xc6, Prefixed: true, Mnemonic: "SET 0,(HL)", Bytes: 2, Cycles: 16, Category: Bit},
	{OpCode: 0xc7, Prefixed: true, Mnemonic: "SET 0,A", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0xc8, Prefixed: true, Mnemonic: "SET 1,B", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0xc9, Prefixed: true, Mnemonic: "SET 1,C", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0xca, Prefixed: true, Mnemonic: "SET 1,D", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0xcb, Prefixed: true, Mnemonic: "SET 1,E", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0xcc, Prefixed: true, Mnemonic: "SET 1,H", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0xcd, Prefixed: true, Mnemonic: "SET 1,L", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0xce, Prefixed: true, Mnemonic: "SET 1,(HL)", Bytes: 2, Cycles: 16, Category: Bit},
	{OpCode: 0xcf, Prefixed: true, Mnemonic: "SET 1,A", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0xd0, Prefixed: true, Mnemonic: "SET 2,B", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0xd1, Prefixed: true, Mnemonic: "SET 2,C", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0xd2, Prefixed: true, Mnemonic: "SET 2,D", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0xd3, Prefixed: true, Mnemonic: "SET 2,E", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0xd4, Prefixed: true, Mnemonic: "SET 2,H", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0xd5, Prefixed: true, Mnemonic: "SET 2,L", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0xd6, Prefixed: true, Mnemonic: "SET 2,(HL)", Bytes: 2, Cycles: 16, Category: Bit},
	{OpCode: 0xd7, Prefixed: true, Mnemonic: "SET 2,A", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0xd8, Prefixed: true, Mnemonic: "SET 3,B", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0xd9, Prefixed: true, Mnemonic: "SET 3,C", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0xda, Prefixed: true, Mnemonic: "SET 3,D", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0xdb, Prefixed: true, Mnemonic: "SET 3,E", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0xdc, Prefixed: true, Mnemonic: "SET 3,H", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0xdd, Prefixed: true, Mnemonic: "SET 3,L", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0xde, Prefixed: true, Mnemonic: "SET 3,(HL)", Bytes: 2, Cycles: 16, Category: Bit},
	{OpCode: 0xdf, Prefixed: true, Mnemonic: "SET 3,A", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0xe0, Prefixed: true, Mnemonic: "SET 4,B", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0xe1, Prefixed: true, Mnemonic: "SET 4,C", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0xe2, Prefixed: true, Mnemonic: "SET 4,D", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0xe3, Prefixed: true, Mnemonic: "SET 4,E", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0xe4, Prefixed: true, Mnemonic: "SET 4,H", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0xe5, Prefixed: true, Mnemonic: "SET 4,L", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0xe6, Prefixed: true, Mnemonic: "SET 4,(HL)", Bytes: 2, Cycles: 16, Category: Bit},
	{OpCode: 0xe7, Prefixed: true, Mnemonic: "SET 4,A", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0xe8, Prefixed: true, Mnemonic: "SET 5,B", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0xe9, Prefixed: true, Mnemonic: "SET 5,C", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0xea, Prefixed: true, Mnemonic: "SET 5,D", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0xeb, Prefixed: true, Mnemonic: "SET 5,E", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0xec, Prefixed: true, Mnemonic: "SET 5,H", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0xed, Prefixed: true, Mnemonic: "SET 5,L", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0xee, Prefixed: true, Mnemonic: "SET 5,(HL)", Bytes: 2, Cycles: 16, Category: Bit},
	{OpCode: 0xef, Prefixed: true, Mnemonic: "SET 5,A", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0xf0, Prefixed: true, Mnemonic: "SET 6,B", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0xf1, Prefixed: true, Mnemonic: "SET 6,C", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0xf2, Prefixed: true, Mnemonic: "SET 6,D", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0xf3, Prefixed: true, Mnemonic: "SET 6,E", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0xf4, Prefixed: true, Mnemonic: "SET 6,H", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0xf5, Prefixed: true, Mnemonic: "SET 6,L", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0xf6, Prefixed: true, Mnemonic: "SET 6,(HL)", Bytes: 2, Cycles: 16, Category: Bit},
	{OpCode: 0xf7, Prefixed: true, Mnemonic: "SET 6,A", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0xf8, Prefixed: true, Mnemonic: "SET 7,B", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0xf9, Prefixed: true, Mnemonic: "SET 7,C", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0xfa, Prefixed: true, Mnemonic: "SET 7,D", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0xfb, Prefixed: true, Mnemonic: "SET 7,E", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0xfc, Prefixed: true, Mnemonic: "SET 7,H", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0xfd, Prefixed: true, Mnemonic: "SET 7,L", Bytes: 2, Cycles: 8, Category: Bit},
	{OpCode: 0xfe, Prefixed: true, Mnemonic: "SET 7,(HL)", Bytes: 2, Cycles: 16, Category: Bit},
	{OpCode: 0xff, Prefixed: true, Mnemonic: "SET 7,A", Bytes: 2, Cycles: 8, Category: Bit},
}
